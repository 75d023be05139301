package decimal

import (
	"math"
	"math/big"
	"math/bits"
)

const wordSize = bits.UintSize / 8

// MaxPrecision is the widest decimal that fits the 16-byte stored form.
const MaxPrecision = 38

var (
	ten = big.NewInt(10)
	one = big.NewInt(1)

	inf    = big.NewInt(0).Exp(ten, big.NewInt(MaxPrecision), nil)
	nan    = big.NewInt(0).Add(inf, one)
	neginf = big.NewInt(0).Neg(inf)
)

const errorTag = "<error>"

// IsInf reports whether x is an infinity.
func IsInf(x *big.Int) bool { return x.CmpAbs(inf) == 0 }

// IsNaN reports whether x is a "not-a-number" value.
func IsNaN(x *big.Int) bool { return x.CmpAbs(nan) == 0 }

// Inf returns infinity value.
func Inf() *big.Int { return big.NewInt(0).Set(inf) }

// NaN returns "not-a-number" value.
func NaN() *big.Int { return big.NewInt(0).Set(nan) }

// FromBytes converts bytes representation of decimal to big integer.
// Most callers should use FromInt128().
//
// If given bytes contains value that is greater than given precision it
// returns infinity or negative infinity value accordingly the bytes sign.
func FromBytes(bts []byte, precision int32) *big.Int {
	v := big.NewInt(0)
	if len(bts) == 0 {
		return v
	}

	v.SetBytes(bts)

	neg := bts[0]&0x80 != 0
	if neg {
		// Given bytes contains negative value.
		// Interpret is as two's complement.
		not(v)
		v.Add(v, one)
		v.Neg(v)
	}
	if v.CmpAbs(pow(ten, precision)) >= 0 {
		if neg {
			v.Set(neginf)
		} else {
			v.Set(inf)
		}
	}

	return v
}

// FromInt128 returns big integer from given array. That is, it interprets
// 16-byte array as 128-bit integer.
func FromInt128(p [16]byte, precision int32) *big.Int {
	return FromBytes(p[:], precision)
}

// Parse interprets a string s as a decimal number and returns its unscaled
// mantissa together with the inferred precision and scale.
//
// Precision is the count of significant digits: integer digits with leading
// zeros dropped plus all fractional digits, at least 1. Scale is the count of
// fractional digits adjusted by an optional exponent suffix, so it may come
// out negative for inputs like "1.2E+3".
func Parse(s string) (v *big.Int, precision, scale int32, err error) {
	neg, rest := parseSign(s)
	if rest == "" {
		return nil, 0, 0, syntaxError(s)
	}

	v = big.NewInt(0)

	var intDigits, fracDigits, exp int32
	var dot, digits bool

loop:
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		switch {
		case c == '.':
			if dot {
				return nil, 0, 0, syntaxError(s)
			}
			dot = true
		case c == 'e' || c == 'E':
			e, ok := parseExponent(rest[i+1:])
			if !ok {
				return nil, 0, 0, syntaxError(s)
			}
			exp = e

			break loop
		case isDigit(c):
			digits = true
			v.Mul(v, ten)
			v.Add(v, big.NewInt(int64(c-'0')))
			if dot {
				fracDigits++
			} else if c != '0' || intDigits > 0 {
				intDigits++
			}
		default:
			return nil, 0, 0, syntaxError(s)
		}
	}

	if !digits {
		return nil, 0, 0, syntaxError(s)
	}

	precision = intDigits + fracDigits
	if precision == 0 {
		precision = 1
	}
	// Scale arithmetic runs in int64: a boundary exponent must fail the
	// precision check below, not wrap around int32.
	scale64 := int64(fracDigits) - int64(exp)
	if scale64 > int64(precision) {
		// Fractional leading zeros demand digit positions of their own.
		if scale64 > MaxPrecision {
			return nil, 0, 0, precisionError(s, scale64)
		}
		precision = int32(scale64)
	}
	if precision > MaxPrecision {
		return nil, 0, 0, precisionError(s, int64(precision))
	}
	scale = int32(scale64)

	if neg {
		v.Neg(v)
	}

	return v, precision, scale, nil
}

// Rescale converts mantissa x from one scale to another, preserving the
// numeric value. Scaling up fails with ErrRescaleOverflow when the result
// exceeds MaxPrecision digits; scaling down fails with ErrRescaleDataLoss
// when non-zero digits would be truncated.
//
// x must stay within the stored form's range, so any shift past MaxPrecision
// fails outright for a non-zero mantissa. The shift is computed in int64;
// boundary scales cannot wrap around int32.
func Rescale(x *big.Int, from, to int32) (*big.Int, error) {
	v := big.NewInt(0).Set(x)
	if v.Sign() == 0 {
		// Zero is zero at every scale.
		return v, nil
	}

	shift := int64(to) - int64(from)
	switch {
	case shift == 0:
	case shift > 0:
		if shift > MaxPrecision {
			return nil, rescaleOverflowError(x, from, to)
		}
		v.Mul(v, pow(ten, int32(shift)))
		if v.CmpAbs(inf) >= 0 {
			return nil, rescaleOverflowError(x, from, to)
		}
	default:
		if -shift > MaxPrecision {
			return nil, rescaleDataLossError(x, from, to)
		}
		var rem big.Int
		v.QuoRem(v, pow(ten, int32(-shift)), &rem)
		if rem.Sign() != 0 {
			return nil, rescaleDataLossError(x, from, to)
		}
	}

	return v, nil
}

func parseSign(s string) (neg bool, remaining string) {
	if s == "" {
		return false, s
	}

	neg = s[0] == '-'
	if neg || s[0] == '+' {
		s = s[1:]
	}

	return neg, s
}

func parseExponent(s string) (int32, bool) {
	neg, s := parseSign(s)
	if s == "" {
		return 0, false
	}

	var e int64
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
		e = e*10 + int64(s[i]-'0')
		if e > math.MaxInt32 {
			return 0, false
		}
	}
	if neg {
		e = -e
	}

	return int32(e), true
}

// Format returns the string representation of mantissa x with the given
// precision and scale.
func Format(x *big.Int, precision, scale int32) string {
	if x == nil {
		return "0"
	}
	if IsInf(x) {
		if x.Sign() < 0 {
			return "-inf"
		}

		return "inf"
	}
	if IsNaN(x) {
		if x.Sign() < 0 {
			return "-nan"
		}

		return "nan"
	}
	if precision < 0 || precision > MaxPrecision {
		return errorTag
	}
	var pad int32
	if scale < 0 {
		// A negative scale means trailing integer zeros; materialize them
		// outside the precision budget, which covers stored digits only.
		pad = -scale
		if pad > MaxPrecision {
			return errorTag
		}
		x = big.NewInt(0).Mul(x, pow(ten, pad))
		scale = 0
	}
	if scale > MaxPrecision {
		return errorTag
	}

	v, neg := abs(x)
	bts, pos := newStringBuffer()

	var digit big.Int
	var emitted int32
	var dot bool
	for ; v.Sign() > 0; v.Div(v, ten) {
		if emitted == precision+pad {
			return errorTag
		}

		digit.Mod(v, ten)
		pos--
		bts[pos] = '0' + byte(digit.Int64())
		emitted++

		if scale > 0 && emitted == scale {
			pos--
			bts[pos] = '.'
			dot = true
		}
	}

	for ; emitted < scale; emitted++ {
		pos--
		bts[pos] = '0'
	}
	if scale > 0 && !dot {
		pos--
		bts[pos] = '.'
	}

	if pos == len(bts) || bts[pos] == '.' {
		pos--
		bts[pos] = '0'
	}

	if neg {
		pos--
		bts[pos] = '-'
	}

	return string(bts[pos:])
}

func abs(x *big.Int) (*big.Int, bool) {
	v := big.NewInt(0).Set(x)
	neg := x.Sign() < 0
	if neg {
		// Convert negative to positive.
		v.Neg(x)
	}

	return v, neg
}

func newStringBuffer() ([]byte, int) {
	// MaxPrecision stored digits, as many materialized trailing zeros
	// again, plus dot, zero before dot, sign and one spare.
	bts := make([]byte, 2*MaxPrecision+4)
	pos := len(bts)

	return bts, pos
}

// Int128 returns the 16-byte array representation of x.
//
// If x value does not fit in 16 bytes with given precision, it returns 16-byte
// representation of infinity or negative infinity value accordingly to x's sign.
func Int128(x *big.Int, precision int32) (p [16]byte) {
	if !IsInf(x) && !IsNaN(x) && x.CmpAbs(pow(ten, precision)) >= 0 {
		if x.Sign() < 0 {
			x = neginf
		} else {
			x = inf
		}
	}
	put(x, p[:])

	return p
}

func put(x *big.Int, p []byte) {
	neg := x.Sign() < 0
	if neg {
		x = complement(x)
	}
	i := len(p)
	for _, d := range x.Bits() {
		for j := 0; j < wordSize; j++ {
			i--
			p[i] = byte(d)
			d >>= 8
		}
	}
	var pad byte
	if neg {
		pad = 0xff
	}
	for 0 < i && i < len(p) {
		i--
		p[i] = pad
	}
}

func Append(p []byte, x *big.Int) []byte {
	n := len(p)
	p = ensure(p, size(x))
	put(x, p[n:])

	return p
}

func size(x *big.Int) int {
	if x.Sign() < 0 {
		x = complement(x)
	}

	return len(x.Bits()) * wordSize
}

func ensure(p []byte, n int) []byte {
	var (
		l = len(p)
		c = cap(p)
	)
	if c-l < n {
		cp := make([]byte, l+n)
		copy(cp, p)
		p = cp
	}

	return p[:l+n]
}

// not is almost the same as x.Not() but without handling the sign of x.
// That is, it more similar to x.Xor(ones) where ones is x bits all set to 1.
func not(x *big.Int) {
	abs := x.Bits()
	for i, d := range abs {
		abs[i] = ^d
	}
}

// pow returns new instance of big.Int equal to x^n.
// n must be non-negative.
func pow(x *big.Int, n int32) *big.Int {
	var (
		v = big.NewInt(1)
		m = big.NewInt(0).Set(x)
	)
	for n > 0 {
		if n&1 != 0 {
			v.Mul(v, m)
		}
		n >>= 1
		m.Mul(m, m)
	}

	return v
}

// complement returns two's complement of x.
// x must be negative.
func complement(x *big.Int) *big.Int {
	x = big.NewInt(0).Set(x)
	not(x)
	x.Neg(x)
	x.Add(x, one)

	return x
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
