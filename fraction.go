package fraction

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// ErrInvalidArgument is the error class reported when a fraction would end up
// with a zero denominator.
// Use [errors.Is] to check for it.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	errZeroDenominator  = fmt.Errorf("%w: denominator cannot be zero", ErrInvalidArgument)
	errFractionOverflow = errors.New("fraction overflow")
)

// Fraction type represents a rational number as a pair of int64 values.
// Its zero value corresponds to 0/1.
//
// Fraction does not keep itself in lowest terms: a value constructed
// with [New] retains the numerator and denominator exactly as given.
// Results of arithmetic operations are always reduced.
// The sign is never normalized, so both 1/-2 and -1/2 are valid values.
//
// Fraction is immutable and is designed to be safe for concurrent use by
// multiple goroutines.
type Fraction struct {
	num int64 // numerator
	dm1 int64 // denominator minus one, so that Fraction{} is 0/1
}

// newFractionUnsafe creates a new fraction without checking the denominator.
// Use it only if you are absolutely sure that the arguments are valid.
func newFractionUnsafe(num, den int64) Fraction {
	return Fraction{num: num, dm1: den - 1}
}

// newFractionSafe creates a new fraction and checks the denominator.
func newFractionSafe(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, errZeroDenominator
	}
	return newFractionUnsafe(num, den), nil
}

// newFractionReduced creates a new fraction, checks the denominator and
// reduces the result to lowest terms.
func newFractionReduced(num, den int64) (Fraction, error) {
	f, err := newFractionSafe(num, den)
	if err != nil {
		return Fraction{}, err
	}
	if g := gcd(num, den); g == -1 && (num == math.MinInt64 || den == math.MinInt64) {
		return Fraction{}, errFractionOverflow
	}
	return simplify(f), nil
}

// New returns a fraction equal to num / den.
// The numerator and denominator are stored as given, without reduction.
//
// New returns an error matching [ErrInvalidArgument] if den is 0.
func New(num, den int64) (Fraction, error) {
	return newFractionSafe(num, den)
}

// MustNew is like [New] but panics if the fraction cannot be constructed.
// It simplifies safe initialization of global variables holding fractions.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", num, den, err))
	}
	return f
}

var pow10 = [...]int64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
}

// NewFromDecimal converts a decimal to a fraction equal to coef / 10^scale,
// reduced to lowest terms.
// The sign of the decimal is always carried by the numerator.
// See also method [Fraction.Decimal].
//
// NewFromDecimal returns an error if the coefficient or 10^scale cannot
// be represented as an int64.
func NewFromDecimal(d decimal.Decimal) (Fraction, error) {
	f, err := newFromDecimal(d)
	if err != nil {
		return Fraction{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return f, nil
}

func newFromDecimal(d decimal.Decimal) (Fraction, error) {
	coef, scale := d.Coef(), d.Scale()
	if coef > math.MaxInt64 || scale >= len(pow10) {
		return Fraction{}, errFractionOverflow
	}
	f := simplify(newFractionUnsafe(int64(coef), pow10[scale])) //nolint:gosec
	if d.IsNeg() {
		f = f.WithNumerator(-f.Numerator())
	}
	return f, nil
}

// Parse converts a string to a fraction.
// The input string must be in one of the following formats:
//
//	1/2
//	-3/4
//	5
//	0.75
//
// The "num/den" and integer forms are stored exactly as written.
// Decimal literals are parsed with [decimal.Parse] and reduced to lowest
// terms, so "0.75" becomes 3/4.
//
// Parse returns an error if the string does not represent a valid fraction
// or if its denominator is 0.
func Parse(s string) (Fraction, error) {
	f, err := parse(s)
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing fraction %q: %w", s, err)
	}
	return f, nil
}

func parse(s string) (Fraction, error) {
	if n, d, ok := strings.Cut(s, "/"); ok {
		num, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return Fraction{}, err
		}
		den, err := strconv.ParseInt(strings.TrimSpace(d), 10, 64)
		if err != nil {
			return Fraction{}, err
		}
		return newFractionSafe(num, den)
	}
	s = strings.TrimSpace(s)
	if num, err := strconv.ParseInt(s, 10, 64); err == nil {
		return newFractionUnsafe(num, 1), nil
	}
	d, err := decimal.Parse(s)
	if err != nil {
		return Fraction{}, err
	}
	return newFromDecimal(d)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding fractions.
func MustParse(s string) Fraction {
	f, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return f
}

// Numerator returns the numerator of the fraction.
func (f Fraction) Numerator() int64 {
	return f.num
}

// Denominator returns the denominator of the fraction.
// The result is never 0.
func (f Fraction) Denominator() int64 {
	return f.dm1 + 1
}

// WithNumerator returns a copy of the fraction with its numerator replaced.
// The denominator is kept and the result is not reduced.
func (f Fraction) WithNumerator(num int64) Fraction {
	return newFractionUnsafe(num, f.Denominator())
}

// WithDenominator returns a copy of the fraction with its denominator replaced.
// The numerator is kept and the result is not reduced.
// The receiver is never modified, including when an error is returned.
//
// WithDenominator returns an error matching [ErrInvalidArgument] if den is 0.
func (f Fraction) WithDenominator(den int64) (Fraction, error) {
	g, err := newFractionSafe(f.Numerator(), den)
	if err != nil {
		return Fraction{}, fmt.Errorf("replacing denominator of %v: %w", f, err)
	}
	return g, nil
}

// DecimalValue returns the nearest binary floating-point approximation of
// numerator / denominator.
// See also method [Fraction.Decimal] for an exact decimal result.
func (f Fraction) DecimalValue() float64 {
	return float64(f.Numerator()) / float64(f.Denominator())
}

// Decimal returns numerator / denominator as a decimal rounded to the given
// number of digits after the decimal point using [rounding half to even]
// (banker's rounding).
// The result is zero-padded to the right up to the given scale.
// See also constructor [NewFromDecimal].
//
// Decimal returns an error if:
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the integer part of the result has more than ([decimal.MaxPrec] - scale) digits.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (f Fraction) Decimal(scale int) (decimal.Decimal, error) {
	d, err := f.decimal(scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", f, err)
	}
	return d, nil
}

func (f Fraction) decimal(scale int) (decimal.Decimal, error) {
	if scale < 0 || scale > decimal.MaxScale {
		return decimal.Decimal{}, fmt.Errorf("scale %v is out of range [0, %v]", scale, decimal.MaxScale)
	}
	q, err := quoHalfEven(abs64(f.Numerator()), abs64(f.Denominator()), scale)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := newDecimalFromUint64(q, scale)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if f.Sign() < 0 {
		d = d.Neg()
	}
	return d, nil
}

// maxCoef is the largest coefficient a decimal can hold.
const maxCoef = 9_999_999_999_999_999_999

// quoHalfEven computes num * 10^scale / den rounded half to even.
// The division is exact, so the result is rounded only once.
func quoHalfEven(num, den uint64, scale int) (uint64, error) {
	hi, lo := bits.Mul64(num, pow10u(scale))
	if hi >= den {
		return 0, errFractionOverflow
	}
	q, rem := bits.Div64(hi, lo, den)
	if q > maxCoef {
		return 0, errFractionOverflow
	}
	// rem < den <= 2^63, so 2*rem cannot overflow.
	if half := 2 * rem; half > den || (half == den && q%2 == 1) {
		q++
	}
	if q > maxCoef {
		return 0, errFractionOverflow
	}
	return q, nil
}

// newDecimalFromUint64 returns coef / 10^scale for any coef up to [maxCoef].
func newDecimalFromUint64(coef uint64, scale int) (decimal.Decimal, error) {
	if coef <= math.MaxInt64 {
		return decimal.New(int64(coef), scale)
	}
	d, err := decimal.New(math.MaxInt64, scale)
	if err != nil {
		return decimal.Decimal{}, err
	}
	e, err := decimal.New(int64(coef-math.MaxInt64), scale) //nolint:gosec
	if err != nil {
		return decimal.Decimal{}, err
	}
	return d.Add(e)
}

// pow10u returns 10^scale for scale in [0, 19].
func pow10u(scale int) uint64 {
	if scale < len(pow10) {
		return uint64(pow10[scale])
	}
	return 10 * uint64(pow10[len(pow10)-1])
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f = 0
//	+1 if f > 0
func (f Fraction) Sign() int {
	return sign(f.Numerator()) * sign(f.Denominator())
}

// IsZero returns:
//
//	true  if f = 0
//	false otherwise
func (f Fraction) IsZero() bool {
	return f.Numerator() == 0
}

// IsInt returns true if the denominator divides the numerator evenly.
func (f Fraction) IsInt() bool {
	return f.Numerator()%f.Denominator() == 0
}

// Reduce returns the fraction reduced to lowest terms by dividing the numerator
// and the denominator by their greatest common divisor.
// As with arithmetic results, the sign is not normalized.
//
// Reduce panics in the single case where the reduction cannot be
// represented, that is when the numerator or the denominator is
// [math.MinInt64] and the divisor is -1.
func (f Fraction) Reduce() Fraction {
	g, err := newFractionReduced(f.Numerator(), f.Denominator())
	if err != nil {
		panic(fmt.Sprintf("%v.Reduce() failed: %v", f, err))
	}
	return g
}

// Inv returns the reciprocal of the fraction, den / num.
// The result is not reduced.
//
// Inv returns an error matching [ErrInvalidArgument] if the fraction is 0.
func (f Fraction) Inv() (Fraction, error) {
	g, err := newFractionSafe(f.Denominator(), f.Numerator())
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [1 / %v]: %w", f, err)
	}
	return g, nil
}

// Add returns the sum of fractions f and g reduced to lowest terms.
// The terms are cross-multiplied over the product of both denominators.
//
// Add returns an error if an intermediate product or the sum does not fit
// into an int64.
func (f Fraction) Add(g Fraction) (Fraction, error) {
	h, err := f.add(g)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v + %v]: %w", f, g, err)
	}
	return h, nil
}

func (f Fraction) add(g Fraction) (Fraction, error) {
	a, b, c, d := f.Numerator(), f.Denominator(), g.Numerator(), g.Denominator()
	ad, ok := mul64(a, d)
	if !ok {
		return Fraction{}, errFractionOverflow
	}
	cb, ok := mul64(c, b)
	if !ok {
		return Fraction{}, errFractionOverflow
	}
	num, ok := add64(ad, cb)
	if !ok {
		return Fraction{}, errFractionOverflow
	}
	den, ok := mul64(b, d)
	if !ok {
		return Fraction{}, errFractionOverflow
	}
	return newFractionReduced(num, den)
}

// Sub returns the difference between fractions f and g reduced to lowest terms.
// The terms are cross-multiplied over the product of both denominators.
//
// Sub returns an error if an intermediate product or the difference does not
// fit into an int64.
func (f Fraction) Sub(g Fraction) (Fraction, error) {
	h, err := f.sub(g)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v - %v]: %w", f, g, err)
	}
	return h, nil
}

func (f Fraction) sub(g Fraction) (Fraction, error) {
	a, b, c, d := f.Numerator(), f.Denominator(), g.Numerator(), g.Denominator()
	ad, ok := mul64(a, d)
	if !ok {
		return Fraction{}, errFractionOverflow
	}
	cb, ok := mul64(c, b)
	if !ok {
		return Fraction{}, errFractionOverflow
	}
	num, ok := sub64(ad, cb)
	if !ok {
		return Fraction{}, errFractionOverflow
	}
	den, ok := mul64(b, d)
	if !ok {
		return Fraction{}, errFractionOverflow
	}
	return newFractionReduced(num, den)
}

// Mul returns the product of fractions f and g reduced to lowest terms.
//
// Mul returns an error if the product of numerators or denominators does not
// fit into an int64.
func (f Fraction) Mul(g Fraction) (Fraction, error) {
	h, err := f.mul(g)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v * %v]: %w", f, g, err)
	}
	return h, nil
}

func (f Fraction) mul(g Fraction) (Fraction, error) {
	num, ok := mul64(f.Numerator(), g.Numerator())
	if !ok {
		return Fraction{}, errFractionOverflow
	}
	den, ok := mul64(f.Denominator(), g.Denominator())
	if !ok {
		return Fraction{}, errFractionOverflow
	}
	return newFractionReduced(num, den)
}

// Quo returns the quotient of fractions f and g reduced to lowest terms.
// The numerator of f is multiplied by the denominator of g and vice versa.
//
// Quo returns an error if:
//   - g is 0, which makes the resulting denominator 0; this error matches
//     [ErrInvalidArgument];
//   - an intermediate product does not fit into an int64.
func (f Fraction) Quo(g Fraction) (Fraction, error) {
	h, err := f.quo(g)
	if err != nil {
		return Fraction{}, fmt.Errorf("computing [%v / %v]: %w", f, g, err)
	}
	return h, nil
}

func (f Fraction) quo(g Fraction) (Fraction, error) {
	if g.IsZero() {
		return Fraction{}, errZeroDenominator
	}
	num, ok := mul64(f.Numerator(), g.Denominator())
	if !ok {
		return Fraction{}, errFractionOverflow
	}
	den, ok := mul64(f.Denominator(), g.Numerator())
	if !ok {
		return Fraction{}, errFractionOverflow
	}
	return newFractionReduced(num, den)
}

// Cmp compares fractions by value and returns:
//
//	-1 if f < g
//	 0 if f = g
//	+1 if f > g
//
// Cmp uses 128-bit cross products and never overflows.
// See also method [Fraction.Equal].
func (f Fraction) Cmp(g Fraction) int {
	a, b, c, d := f.Numerator(), f.Denominator(), g.Numerator(), g.Denominator()
	// a/b ? c/d is the same as a*d ? c*b when b*d > 0, and reversed otherwise.
	r := cmp128(a, d, c, b)
	return r * sign(b) * sign(d)
}

// Equal returns true if fractions represent the same value,
// for example 1/2 and 2/4.
// To compare the representations, use the == operator.
func (f Fraction) Equal(g Fraction) bool {
	return f.Cmp(g) == 0
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the fraction in the "num/den" form.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fraction) String() string {
	var buf [41]byte
	text := strconv.AppendInt(buf[:0], f.Numerator(), 10)
	text = append(text, '/')
	text = strconv.AppendInt(text, f.Denominator(), 10)
	return string(text)
}

// simplify divides the numerator and the denominator by their greatest common
// divisor. The denominator of f must not be 0.
func simplify(f Fraction) Fraction {
	num, den := f.Numerator(), f.Denominator()
	g := gcd(num, den)
	return newFractionUnsafe(num/g, den/g)
}

// gcd computes the greatest common divisor using the Euclidean algorithm.
// The sign of the result follows the sign convention of the % operator,
// so it can be negative.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func sign(x int64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

func add64(a, b int64) (int64, bool) {
	c := a + b
	if (a > 0 && b > 0 && c < 0) || (a < 0 && b < 0 && c >= 0) {
		return 0, false
	}
	return c, true
}

func sub64(a, b int64) (int64, bool) {
	c := a - b
	if (a >= 0 && b < 0 && c < 0) || (a < 0 && b > 0 && c >= 0) {
		return 0, false
	}
	return c, true
}

func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

// abs64 returns the magnitude of x, including for [math.MinInt64].
func abs64(x int64) uint64 {
	u := uint64(x) //nolint:gosec
	if x < 0 {
		u = -u
	}
	return u
}

// cmp128 compares the exact products a*b and c*d.
func cmp128(a, b, c, d int64) int {
	s, t := sign(a)*sign(b), sign(c)*sign(d)
	if s != t {
		if s < t {
			return -1
		}
		return 1
	}
	if s == 0 {
		return 0
	}
	xhi, xlo := bits.Mul64(abs64(a), abs64(b))
	yhi, ylo := bits.Mul64(abs64(c), abs64(d))
	r := 0
	switch {
	case xhi < yhi, xhi == yhi && xlo < ylo:
		r = -1
	case xhi > yhi, xhi == yhi && xlo > ylo:
		r = 1
	}
	return r * s
}
