package ijson

import (
	"math/big"
	"strings"
)

// numberPrecision is the bit precision used for the big.Float backing
// a decimal Number. It is generous enough that comparisons against the
// scenarios in spec.md §8 (e.g. "1.0E+2" equalling 100) are exact.
const numberPrecision = 256

// Number is a JSON number. Per spec.md §4.2, a literal with no '.' and
// no exponent is an arbitrary-precision integer; any other numeric
// literal is a decimal that preserves the source's lexical precision
// (so "1.0E+2" is not silently collapsed to the integer 100).
type Number struct {
	lit   string
	isInt bool
	i     *big.Int
	d     *big.Float
}

// ParseNumber parses a raw number lexeme (as produced by the lexer,
// e.g. "-12", "0.5", "1.0e+2") into a Number.
func ParseNumber(lit string) (Number, error) {
	if isIntegerLiteral(lit) {
		i, ok := new(big.Int).SetString(lit, 10)
		if !ok {
			return Number{}, newJSONError("invalid integer literal '"+lit+"'", 0, 0, 0)
		}
		return Number{lit: lit, isInt: true, i: i}, nil
	}

	f, _, err := big.ParseFloat(lit, 10, numberPrecision, big.ToNearestEven)
	if err != nil {
		return Number{}, wrapJSONError("invalid number literal '"+lit+"'", 0, 0, 0, err)
	}
	return Number{lit: lit, isInt: false, d: f}, nil
}

// isIntegerLiteral reports whether lit (per the grammar in spec.md
// §4.1) has no fractional part and no exponent.
func isIntegerLiteral(lit string) bool {
	return !strings.ContainsAny(lit, ".eE")
}

// IsInt reports whether the number was lexed without a '.' or exponent.
func (n Number) IsInt() bool {
	return n.isInt
}

// Int returns the integer value. It panics if IsInt is false.
func (n Number) Int() *big.Int {
	if !n.isInt {
		panic("ijson: Int called on a decimal Number")
	}
	return n.i
}

// Decimal returns the arbitrary-precision decimal value. It panics if
// IsInt is true.
func (n Number) Decimal() *big.Float {
	if n.isInt {
		panic("ijson: Decimal called on an integer Number")
	}
	return n.d
}

// String returns the literal exactly as it was lexed, preserving
// lexical precision (sign, trailing zeros, exponent form).
func (n Number) String() string {
	return n.lit
}

// Float64 is a lossy convenience conversion, useful for comparisons in
// tests and for callers that do not need exact precision.
func (n Number) Float64() float64 {
	if n.isInt {
		f := new(big.Float).SetInt(n.i)
		v, _ := f.Float64()
		return v
	}
	v, _ := n.d.Float64()
	return v
}
