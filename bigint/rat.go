package bigint

import (
	"strconv"
	"strings"
)

// Rat is an exact rational number. It is kept normalized: the denominator is
// positive and the numerator and denominator share no common factor. The
// zero value is 0.
type Rat struct {
	num Int
	den Int
}

// NewRat returns num/den reduced to lowest terms.
func NewRat(num, den Int) (Rat, error) {
	if den.IsZero() {
		return Rat{}, ErrDivisionByZero
	}
	return makeRat(num, den), nil
}

// NewRatInt returns the rational n/1.
func NewRatInt(n Int) Rat {
	return Rat{num: n, den: New(1)}
}

// makeRat normalizes sign and reduces by the gcd. den must be non-zero.
func makeRat(num, den Int) Rat {
	if den.Sign() < 0 {
		num = num.Neg()
		den = den.Neg()
	}
	g := gcd(num, den)
	if !g.IsZero() {
		num, _ = num.Div(g)
		den, _ = den.Div(g)
	}
	return Rat{num: num, den: den}
}

// gcd computes the greatest common divisor of |a| and |b| by Euclid's
// algorithm.
func gcd(a, b Int) Int {
	a, b = a.Abs(), b.Abs()
	for !b.IsZero() {
		r, _ := a.Mod(b)
		a, b = b, r
	}
	return a
}

// denom returns the denominator, treating the zero value's as 1.
func (r Rat) denom() Int {
	if r.den.IsZero() {
		return New(1)
	}
	return r.den
}

// Num returns the numerator.
func (r Rat) Num() Int { return r.num }

// Denom returns the positive denominator.
func (r Rat) Denom() Int { return r.denom() }

// Sign returns -1, 0, or 1 for negative, zero, or positive r.
func (r Rat) Sign() int { return r.num.Sign() }

// IsZero reports whether r is 0.
func (r Rat) IsZero() bool { return r.num.IsZero() }

// Neg returns -r.
func (r Rat) Neg() Rat { return Rat{num: r.num.Neg(), den: r.denom()} }

// Add returns r + other.
func (r Rat) Add(other Rat) Rat {
	num := r.num.Mul(other.denom()).Add(other.num.Mul(r.denom()))
	return makeRat(num, r.denom().Mul(other.denom()))
}

// Sub returns r - other.
func (r Rat) Sub(other Rat) Rat { return r.Add(other.Neg()) }

// Mul returns r * other.
func (r Rat) Mul(other Rat) Rat {
	return makeRat(r.num.Mul(other.num), r.denom().Mul(other.denom()))
}

// Div returns r / other.
func (r Rat) Div(other Rat) (Rat, error) {
	if other.IsZero() {
		return Rat{}, ErrDivisionByZero
	}
	return makeRat(r.num.Mul(other.denom()), r.denom().Mul(other.num)), nil
}

// Cmp returns -1, 0, or 1 as r is less than, equal to, or greater than
// other. Denominators are positive, so cross-multiplication preserves order.
func (r Rat) Cmp(other Rat) int {
	return r.num.Mul(other.denom()).Cmp(other.num.Mul(r.denom()))
}

// Equal reports whether r and other represent the same rational.
func (r Rat) Equal(other Rat) bool { return r.Cmp(other) == 0 }

// String renders r as "num/den", or just "num" when the denominator is 1.
func (r Rat) String() string {
	den := r.denom()
	if den.Equal(New(1)) {
		return r.num.String()
	}
	return r.num.String() + "/" + den.String()
}

// Decimal renders r with exactly precision digits after the decimal point,
// truncated (not rounded). With precision 0 only the integer part is
// rendered.
func (r Rat) Decimal(precision int) string {
	den := r.denom()
	intPart, rem, _ := r.num.QuoRem(den)

	var sb strings.Builder
	if rem.Sign() < 0 && intPart.IsZero() {
		sb.WriteByte('-')
	}
	sb.WriteString(intPart.String())
	if precision <= 0 {
		return sb.String()
	}

	sb.WriteByte('.')
	ten := New(10)
	num := rem.Abs().Mul(ten)
	for i := 0; i < precision; i++ {
		digit, next, _ := num.QuoRem(den)
		sb.WriteString(digit.String())
		num = next.Mul(ten)
	}
	return sb.String()
}

// Float64 returns the nearest float64 by way of a 15-digit decimal
// rendering.
func (r Rat) Float64() (float64, error) {
	return strconv.ParseFloat(r.Decimal(15), 64)
}
