package decimal

import (
	"encoding/binary"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		s         string
		v         *big.Int
		precision int32
		scale     int32
		err       error
	}{
		{s: "123.45", v: big.NewInt(12345), precision: 5, scale: 2},
		{s: "-123.45", v: big.NewInt(-12345), precision: 5, scale: 2},
		{s: "+1.5", v: big.NewInt(15), precision: 2, scale: 1},
		{s: "0.00012", v: big.NewInt(12), precision: 5, scale: 5},
		{s: "12000", v: big.NewInt(12000), precision: 5, scale: 0},
		{s: ".5", v: big.NewInt(5), precision: 1, scale: 1},
		{s: "0", v: big.NewInt(0), precision: 1, scale: 0},
		{s: "0.000", v: big.NewInt(0), precision: 3, scale: 3},
		{s: "123456789", v: big.NewInt(123456789), precision: 9, scale: 0},
		{s: "1.2E+3", v: big.NewInt(12), precision: 2, scale: -2},
		{s: "12E2", v: big.NewInt(12), precision: 2, scale: -2},
		{s: "1.2e-3", v: big.NewInt(12), precision: 4, scale: 4},
		{s: "", err: ErrSyntax},
		{s: "+", err: ErrSyntax},
		{s: ".", err: ErrSyntax},
		{s: "abc", err: ErrSyntax},
		{s: "1.2.3", err: ErrSyntax},
		{s: "1,5", err: ErrSyntax},
		{s: "--5", err: ErrSyntax},
		{s: "1e", err: ErrSyntax},
		{s: "1e+", err: ErrSyntax},
		{s: "5e99999999999", err: ErrSyntax},
		// int32 boundary exponents must fail cleanly, not wrap.
		{s: "1E2147483648", err: ErrSyntax},
		{s: "1E-2147483648", err: ErrSyntax},
		{s: "0.5E-2147483647", err: ErrPrecisionOverflow},
		{s: "1E2147483647", v: big.NewInt(1), precision: 1, scale: -2147483647},
		{
			s:   "123456789012345678901234567890123456789",
			err: ErrPrecisionOverflow,
		},
		{
			s:   "0.123456789012345678901234567890123456789",
			err: ErrPrecisionOverflow,
		},
	} {
		t.Run(tt.s, func(t *testing.T) {
			v, precision, scale, err := Parse(tt.s)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.v, v)
			require.Equal(t, tt.precision, precision)
			require.Equal(t, tt.scale, scale)
		})
	}
}

func TestParseMaxPrecision(t *testing.T) {
	s := "99999999999999999999999999999999999999" // 38 nines
	v, precision, scale, err := Parse(s)
	require.NoError(t, err)
	require.Equal(t, int32(38), precision)
	require.Equal(t, int32(0), scale)
	require.Equal(t, s, v.String())
}

func TestRescale(t *testing.T) {
	for _, tt := range []struct {
		name string
		x    *big.Int
		from int32
		to   int32
		want *big.Int
		err  error
	}{
		{name: "same scale", x: big.NewInt(12345), from: 2, to: 2, want: big.NewInt(12345)},
		{name: "scale up", x: big.NewInt(15), from: 1, to: 3, want: big.NewInt(1500)},
		{name: "scale up negative", x: big.NewInt(-15), from: 1, to: 3, want: big.NewInt(-1500)},
		{name: "scale down exact", x: big.NewInt(1500), from: 3, to: 1, want: big.NewInt(15)},
		{name: "from negative scale", x: big.NewInt(12), from: -2, to: 0, want: big.NewInt(1200)},
		{name: "scale down lossy", x: big.NewInt(1501), from: 3, to: 1, err: ErrRescaleDataLoss},
		{
			name: "overflow",
			x:    big.NewInt(0).Exp(big.NewInt(10), big.NewInt(37), nil),
			from: 0,
			to:   5,
			err:  ErrRescaleOverflow,
		},
		{
			name: "boundary shift up",
			x:    big.NewInt(1),
			from: -2147483647,
			to:   0,
			err:  ErrRescaleOverflow,
		},
		{
			name: "boundary shift down",
			x:    big.NewInt(1),
			from: 0,
			to:   -2147483647,
			err:  ErrRescaleDataLoss,
		},
		{
			name: "zero any shift",
			x:    big.NewInt(0),
			from: -2147483647,
			to:   2147483647,
			want: big.NewInt(0),
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Rescale(tt.x, tt.from, tt.to)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, v)
		})
	}
}

func TestFormat(t *testing.T) {
	for _, tt := range []struct {
		name      string
		x         *big.Int
		precision int32
		scale     int32
		want      string
	}{
		{name: "plain", x: big.NewInt(12345), precision: 5, scale: 2, want: "123.45"},
		{name: "negative", x: big.NewInt(-12345), precision: 5, scale: 2, want: "-123.45"},
		{name: "leading zeros", x: big.NewInt(12), precision: 5, scale: 5, want: "0.00012"},
		{name: "zero", x: big.NewInt(0), precision: 5, scale: 0, want: "0"},
		{name: "zero scaled", x: big.NewInt(0), precision: 5, scale: 2, want: "0.00"},
		{name: "frac zeros", x: big.NewInt(50000000), precision: 22, scale: 9, want: "0.050000000"},
		{name: "unit", x: big.NewInt(1000000000), precision: 22, scale: 9, want: "1.000000000"},
		{name: "negative scale", x: big.NewInt(12), precision: 5, scale: -2, want: "1200"},
		// Materialized trailing zeros do not count against the precision
		// budget: this is exactly Parse("1.2E+3")'s output.
		{name: "negative scale tight precision", x: big.NewInt(12), precision: 2, scale: -2, want: "1200"},
		{name: "negative scale full width", x: big.NewInt(0).Exp(big.NewInt(10), big.NewInt(37), nil), precision: 38, scale: -38, want: "1" + strings.Repeat("0", 75)},
		{name: "negative scale beyond range", x: big.NewInt(1), precision: 1, scale: -39, want: errorTag},
		{name: "inf", x: Inf(), precision: 22, scale: 9, want: "inf"},
		{name: "neg inf", x: big.NewInt(0).Neg(Inf()), precision: 22, scale: 9, want: "-inf"},
		{name: "nan", x: NaN(), precision: 22, scale: 9, want: "nan"},
		{name: "nil", x: nil, precision: 22, scale: 9, want: "0"},
		{name: "precision exhausted", x: big.NewInt(12345), precision: 3, scale: 0, want: errorTag},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Format(tt.x, tt.precision, tt.scale))
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{
		"123.45",
		"-123.45",
		"0.00012",
		"12000",
		"0",
		"99999999999999999999999999999999999999",
		"-0.000000001",
	} {
		t.Run(s, func(t *testing.T) {
			v, precision, scale, err := Parse(s)
			require.NoError(t, err)
			require.Equal(t, s, Format(v, precision, scale))
		})
	}
}

func TestFromBytes(t *testing.T) {
	for _, tt := range []struct {
		name      string
		bts       []byte
		precision int32
		scale     int32
		format    string
	}{
		{
			bts:       uint128(0xffffffffffffffff, 0xffffffffffffffff),
			precision: 22,
			scale:     9,
			format:    "-0.000000001",
		},
		{
			bts:       uint128(0xffffffffffffffff, 0),
			precision: 22,
			scale:     9,
			format:    "-18446744073.709551616",
		},
		{
			bts:       uint128(0x4000000000000000, 0),
			precision: 22,
			scale:     9,
			format:    "inf",
		},
		{
			bts:       uint128(0x8000000000000000, 0),
			precision: 22,
			scale:     9,
			format:    "-inf",
		},
		{
			bts:       uint128s(1000000000),
			precision: 22,
			scale:     9,
			format:    "1.000000000",
		},
		{
			bts:       []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 250, 240, 128},
			precision: 22,
			scale:     9,
			format:    "0.050000000",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			x := FromBytes(tt.bts, tt.precision)
			p := Append(nil, x)
			y := FromBytes(p, tt.precision)
			if x.Cmp(y) != 0 {
				t.Errorf(
					"parsed bytes serialized to different value: %v; want %v",
					x, y,
				)
			}
			require.Equal(t, tt.format, Format(x, tt.precision, tt.scale))
		})
	}
}

func uint128(hi, lo uint64) []byte {
	p := make([]byte, 16)
	binary.BigEndian.PutUint64(p[:8], hi)
	binary.BigEndian.PutUint64(p[8:], lo)

	return p
}

func uint128s(lo uint64) []byte {
	return uint128(0, lo)
}

func TestInt128RoundTrip(t *testing.T) {
	for _, x := range []*big.Int{
		big.NewInt(0),
		big.NewInt(12345),
		big.NewInt(-12345),
		big.NewInt(0).Exp(big.NewInt(10), big.NewInt(37), nil),
	} {
		t.Run(x.String(), func(t *testing.T) {
			p := Int128(x, MaxPrecision)
			require.Equal(t, 0, x.Cmp(FromInt128(p, MaxPrecision)))
		})
	}
}

func TestInt128Saturation(t *testing.T) {
	x := big.NewInt(1000000) // exceeds precision 5
	p := Int128(x, 5)
	require.True(t, IsInf(FromInt128(p, 5)))

	x.Neg(x)
	p = Int128(x, 5)
	y := FromInt128(p, 5)
	require.True(t, IsInf(y))
	require.Equal(t, -1, y.Sign())
}
