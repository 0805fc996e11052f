package bigint

import (
	"errors"
	"fmt"
	"strings"
)

// Cells hold 9 decimal digits each, little-endian.
const (
	cellBase = 1_000_000_000
	cellLen  = 9
)

var (
	// ErrSyntax is returned by Parse for input that is not a decimal
	// integer with an optional leading sign.
	ErrSyntax = errors.New("bigint: invalid number syntax")

	// ErrDivisionByZero is returned by Div and Mod when the divisor is zero.
	ErrDivisionByZero = errors.New("bigint: division by zero")
)

// Int is an arbitrary-precision signed integer. The zero value is 0.
// Zero is canonically non-negative with no cells.
type Int struct {
	neg   bool
	cells []uint32
}

// New returns the Int representing v.
func New(v int64) Int {
	neg := v < 0
	var cells []uint32
	for v != 0 {
		d := v % cellBase
		if d < 0 {
			d = -d
		}
		cells = append(cells, uint32(d))
		v /= cellBase
	}
	return Int{neg: neg && len(cells) > 0, cells: cells}
}

// Parse converts a decimal string with an optional leading + or - sign.
func Parse(s string) (Int, error) {
	body := s
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		body = s[1:]
	case strings.HasPrefix(s, "+"):
		body = s[1:]
	}
	if body == "" {
		return Int{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return Int{}, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
	}

	var cells []uint32
	for end := len(body); end > 0; end -= cellLen {
		start := end - cellLen
		if start < 0 {
			start = 0
		}
		var cell uint32
		for i := start; i < end; i++ {
			cell = cell*10 + uint32(body[i]-'0')
		}
		cells = append(cells, cell)
	}
	return makeInt(neg, trim(cells)), nil
}

// MustParse is Parse that panics on malformed input. Intended for constants.
func MustParse(s string) Int {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// makeInt builds a canonical Int: zero is never negative.
func makeInt(neg bool, cells []uint32) Int {
	if len(cells) == 0 {
		return Int{}
	}
	return Int{neg: neg, cells: cells}
}

// trim drops leading zero cells (high-order end of the slice).
func trim(cells []uint32) []uint32 {
	n := len(cells)
	for n > 0 && cells[n-1] == 0 {
		n--
	}
	return cells[:n]
}

// IsZero reports whether x is 0.
func (x Int) IsZero() bool { return len(x.cells) == 0 }

// Sign returns -1, 0, or 1 for negative, zero, or positive x.
func (x Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Neg returns -x.
func (x Int) Neg() Int {
	if x.IsZero() {
		return Int{}
	}
	return Int{neg: !x.neg, cells: x.cells}
}

// Abs returns the absolute value of x.
func (x Int) Abs() Int { return Int{cells: x.cells} }

// cmpAbs compares magnitudes only.
func cmpAbs(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp returns -1, 0, or 1 as x is less than, equal to, or greater than y.
func (x Int) Cmp(y Int) int {
	xs, ys := x.Sign(), y.Sign()
	if xs != ys {
		if xs < ys {
			return -1
		}
		return 1
	}
	c := cmpAbs(x.cells, y.cells)
	if xs < 0 {
		return -c
	}
	return c
}

// Equal reports whether x and y represent the same integer.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// addAbs returns |a| + |b| as cells.
func addAbs(a, b []uint32) []uint32 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]uint32, 0, n+1)
	var carry uint64
	for i := 0; i < n || carry > 0; i++ {
		sum := carry
		if i < len(a) {
			sum += uint64(a[i])
		}
		if i < len(b) {
			sum += uint64(b[i])
		}
		out = append(out, uint32(sum%cellBase))
		carry = sum / cellBase
	}
	return trim(out)
}

// subAbs returns |a| - |b| as cells; requires |a| >= |b|.
func subAbs(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	var borrow int64
	for i := 0; i < len(a); i++ {
		diff := int64(a[i]) - borrow
		if i < len(b) {
			diff -= int64(b[i])
		}
		if diff < 0 {
			diff += cellBase
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(diff)
	}
	return trim(out)
}

// Add returns x + y.
func (x Int) Add(y Int) Int {
	if x.neg == y.neg {
		return makeInt(x.neg, addAbs(x.cells, y.cells))
	}
	switch cmpAbs(x.cells, y.cells) {
	case 0:
		return Int{}
	case -1:
		return makeInt(y.neg, subAbs(y.cells, x.cells))
	default:
		return makeInt(x.neg, subAbs(x.cells, y.cells))
	}
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int { return x.Add(y.Neg()) }

// Mul returns x * y using schoolbook multiplication over cells.
func (x Int) Mul(y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Int{}
	}
	out := make([]uint32, len(x.cells)+len(y.cells))
	for i, xc := range x.cells {
		var carry uint64
		for j := 0; j < len(y.cells) || carry > 0; j++ {
			p := uint64(out[i+j]) + carry
			if j < len(y.cells) {
				p += uint64(xc) * uint64(y.cells[j])
			}
			out[i+j] = uint32(p % cellBase)
			carry = p / cellBase
		}
	}
	return makeInt(x.neg != y.neg, trim(out))
}

// mulCell returns |x| * d for a single cell digit d.
func mulCell(cells []uint32, d uint32) []uint32 {
	if d == 0 || len(cells) == 0 {
		return nil
	}
	out := make([]uint32, 0, len(cells)+1)
	var carry uint64
	for _, c := range cells {
		p := uint64(c)*uint64(d) + carry
		out = append(out, uint32(p%cellBase))
		carry = p / cellBase
	}
	for carry > 0 {
		out = append(out, uint32(carry%cellBase))
		carry /= cellBase
	}
	return trim(out)
}

// Div returns the quotient x / y truncated toward zero.
func (x Int) Div(y Int) (Int, error) {
	q, _, err := x.QuoRem(y)
	return q, err
}

// Mod returns the remainder x % y. The result carries the sign of x.
func (x Int) Mod(y Int) (Int, error) {
	_, r, err := x.QuoRem(y)
	return r, err
}

// QuoRem returns both the truncated quotient and the remainder of x / y.
//
// Each quotient cell is found by binary search over [0, cellBase): the
// largest digit d with divisor*d not exceeding the running remainder.
func (x Int) QuoRem(y Int) (Int, Int, error) {
	if y.IsZero() {
		return Int{}, Int{}, ErrDivisionByZero
	}

	a, b := x.cells, y.cells
	switch cmpAbs(a, b) {
	case -1:
		return Int{}, x, nil
	case 0:
		return makeInt(x.neg != y.neg, []uint32{1}), Int{}, nil
	}

	quot := make([]uint32, len(a))
	var rem []uint32
	for i := len(a) - 1; i >= 0; i-- {
		rem = append([]uint32{a[i]}, rem...)
		rem = trim(rem)

		var digit uint32
		lo, hi := uint32(0), uint32(cellBase-1)
		for lo <= hi {
			mid := lo + (hi-lo)/2
			if cmpAbs(mulCell(b, mid), rem) <= 0 {
				digit = mid
				lo = mid + 1
			} else {
				if mid == 0 {
					break
				}
				hi = mid - 1
			}
		}

		quot[i] = digit
		rem = subAbs(rem, mulCell(b, digit))
	}

	q := makeInt(x.neg != y.neg, trim(quot))
	r := makeInt(x.neg, rem)
	return q, r, nil
}

// String renders x in decimal.
func (x Int) String() string {
	if x.IsZero() {
		return "0"
	}
	var sb strings.Builder
	if x.neg {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, "%d", x.cells[len(x.cells)-1])
	for i := len(x.cells) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%0*d", cellLen, x.cells[i])
	}
	return sb.String()
}
