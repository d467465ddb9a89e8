package fraction_test

import (
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/govalues/fraction"
)

// HarmonicNumber returns the sum 1/1 + 1/2 + ... + 1/n.
func HarmonicNumber(n int64) (fraction.Fraction, error) {
	sum := fraction.Fraction{}
	for i := int64(1); i <= n; i++ {
		term, err := fraction.New(1, i)
		if err != nil {
			return fraction.Fraction{}, err
		}
		sum, err = sum.Add(term)
		if err != nil {
			return fraction.Fraction{}, err
		}
	}
	return sum, nil
}

// In this example, the 10th harmonic number is computed exactly and then
// rounded to 6 decimal places.
func Example_harmonicNumber() {
	h, err := HarmonicNumber(10)
	if err != nil {
		panic(err)
	}
	d, err := h.Decimal(6)
	if err != nil {
		panic(err)
	}
	fmt.Printf("H(10) = %v\n", h)
	fmt.Printf("H(10) ≈ %v\n", d)
	// Output:
	// H(10) = 7381/2520
	// H(10) ≈ 2.928968
}

// In this example, two fractions are combined with all four operations,
// stopping at the first failure.
func Example_arithmetic() {
	f := fraction.MustNew(1, 2)
	g := fraction.MustNew(1, 3)

	ops := []struct {
		name string
		op   func(fraction.Fraction) (fraction.Fraction, error)
	}{
		{"Sum", f.Add},
		{"Difference", f.Sub},
		{"Product", f.Mul},
		{"Quotient", f.Quo},
	}
	for _, o := range ops {
		r, err := o.op(g)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%-10s = %v\n", o.name, r)
	}
	// Output:
	// Sum        = 5/6
	// Difference = 1/6
	// Product    = 1/6
	// Quotient   = 3/2
}

func ExampleNew() {
	fmt.Println(fraction.New(2, 4))
	fmt.Println(fraction.New(1, 0))
	// Output:
	// 2/4 <nil>
	// 0/1 invalid argument: denominator cannot be zero
}

func ExampleMustNew() {
	fmt.Println(fraction.MustNew(-3, 4))
	// Output: -3/4
}

func ExampleParse() {
	fmt.Println(fraction.Parse("2/4"))
	fmt.Println(fraction.Parse("-7"))
	fmt.Println(fraction.Parse("0.75"))
	// Output:
	// 2/4 <nil>
	// -7/1 <nil>
	// 3/4 <nil>
}

func ExampleMustParse() {
	fmt.Println(fraction.MustParse("5/6"))
	// Output: 5/6
}

func ExampleNewFromDecimal() {
	d := decimal.MustParse("-1.25")
	fmt.Println(fraction.NewFromDecimal(d))
	// Output: -5/4 <nil>
}

func ExampleFraction_Numerator() {
	f := fraction.MustNew(2, 4)
	fmt.Println(f.Numerator())
	fmt.Println(f.Denominator())
	// Output:
	// 2
	// 4
}

func ExampleFraction_WithNumerator() {
	f := fraction.MustNew(1, 2)
	fmt.Println(f.WithNumerator(3))
	fmt.Println(f)
	// Output:
	// 3/2
	// 1/2
}

func ExampleFraction_WithDenominator() {
	f := fraction.MustNew(1, 2)
	fmt.Println(f.WithDenominator(8))
	_, err := f.WithDenominator(0)
	fmt.Println(err)
	fmt.Println(f)
	// Output:
	// 1/8 <nil>
	// replacing denominator of 1/2: invalid argument: denominator cannot be zero
	// 1/2
}

func ExampleFraction_DecimalValue() {
	f := fraction.MustNew(5, 6)
	g := fraction.MustNew(3, 2)
	fmt.Println(f.DecimalValue())
	fmt.Println(g.DecimalValue())
	// Output:
	// 0.8333333333333334
	// 1.5
}

func ExampleFraction_Decimal() {
	f := fraction.MustNew(2, 3)
	fmt.Println(f.Decimal(0))
	fmt.Println(f.Decimal(2))
	fmt.Println(f.Decimal(4))
	// Output:
	// 1 <nil>
	// 0.67 <nil>
	// 0.6667 <nil>
}

func ExampleFraction_Add() {
	f := fraction.MustNew(1, 2)
	g := fraction.MustNew(1, 3)
	fmt.Println(f.Add(g))
	// Output: 5/6 <nil>
}

func ExampleFraction_Sub() {
	f := fraction.MustNew(1, 2)
	g := fraction.MustNew(1, 3)
	fmt.Println(f.Sub(g))
	fmt.Println(g.Sub(f))
	// Output:
	// 1/6 <nil>
	// 1/-6 <nil>
}

func ExampleFraction_Mul() {
	f := fraction.MustNew(2, 3)
	g := fraction.MustNew(3, 4)
	fmt.Println(f.Mul(g))
	// Output: 1/2 <nil>
}

func ExampleFraction_Quo() {
	f := fraction.MustNew(1, 2)
	g := fraction.MustNew(1, 3)
	fmt.Println(f.Quo(g))
	// Output: 3/2 <nil>
}

func ExampleFraction_Quo_zero() {
	f := fraction.MustNew(1, 2)
	g := fraction.MustNew(0, 5)
	_, err := f.Quo(g)
	fmt.Println(err)
	fmt.Println(errors.Is(err, fraction.ErrInvalidArgument))
	// Output:
	// computing [1/2 / 0/5]: invalid argument: denominator cannot be zero
	// true
}

func ExampleFraction_Reduce() {
	fmt.Println(fraction.MustNew(2, 4).Reduce())
	fmt.Println(fraction.MustNew(-2, 4).Reduce())
	// Output:
	// 1/2
	// 1/-2
}

func ExampleFraction_Inv() {
	fmt.Println(fraction.MustNew(2, 3).Inv())
	// Output: 3/2 <nil>
}

func ExampleFraction_Sign() {
	fmt.Println(fraction.MustNew(1, -2).Sign())
	fmt.Println(fraction.MustNew(0, 3).Sign())
	fmt.Println(fraction.MustNew(-1, -2).Sign())
	// Output:
	// -1
	// 0
	// 1
}

func ExampleFraction_Cmp() {
	f := fraction.MustNew(1, 2)
	g := fraction.MustNew(2, 4)
	h := fraction.MustNew(1, 3)
	fmt.Println(f.Cmp(g))
	fmt.Println(f.Cmp(h))
	fmt.Println(h.Cmp(f))
	// Output:
	// 0
	// 1
	// -1
}

func ExampleFraction_Equal() {
	f := fraction.MustNew(1, 2)
	g := fraction.MustNew(2, 4)
	fmt.Println(f.Equal(g))
	fmt.Println(f == g)
	// Output:
	// true
	// false
}

func ExampleFraction_String() {
	fmt.Println(fraction.Fraction{}.String())
	fmt.Println(fraction.MustNew(7, -8).String())
	// Output:
	// 0/1
	// 7/-8
}
