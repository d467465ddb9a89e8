/*
Package fraction implements rational numbers with int64 numerators and
denominators.
It pairs exact integer arithmetic with conversions to and from the
[decimal] package, so fractions can be turned into decimals with
predictable rounding.

# Features

  - Immutable values, ensuring safe usage across multiple goroutines
  - Addition, subtraction, multiplication and division with reduced results
  - Exact comparison using 128-bit cross products
  - Conversions from and to decimals, floats and strings
  - Text, JSON, BSON and SQL encodings

# Representation

A [Fraction] is a struct holding a numerator and a denominator.
The denominator is never zero, and the zero value of Fraction is 0/1.

Fractions created with [New] or [Parse] are stored exactly as given:
2/4 stays 2/4 until it takes part in an arithmetic operation or is
reduced with [Fraction.Reduce].
Arithmetic results are always reduced by their greatest common divisor,
which is computed with the Euclidean algorithm.

The sign is never normalized.
Since the remainder operator in Go takes the sign of the dividend, the
greatest common divisor can be negative, and a reduction can move the
minus sign from the numerator to the denominator, e.g. -2/4 reduces to 1/-2.
Use [Fraction.Sign] rather than the sign of the numerator.

# Operations

Each arithmetic operation cross-multiplies its operands without looking
for the least common multiple:

	a/b + c/d = (a*d + c*b) / (b*d)
	a/b - c/d = (a*d - c*b) / (b*d)
	a/b * c/d = (a*c) / (b*d)
	a/b / c/d = (a*d) / (b*c)

and then reduces the result.

# Errors

Constructors and operations return an error matching [ErrInvalidArgument]
whenever the resulting denominator would be zero.
This includes dividing by a fraction equal to zero, which is reported in
the same way as constructing a fraction with a zero denominator.

Operations also return an error when an intermediate product or sum does
not fit into an int64.
Integer overflow is never silently wrapped.
*/
package fraction
