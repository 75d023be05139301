// Package decimal converts textual and arbitrary-precision decimal values
// into a fixed-precision, fixed-scale 128-bit stored form suitable for
// columnar storage, and back.
package decimal

import (
	"fmt"
	"math/big"

	internal "github.com/colstore/decimal-go/internal/decimal"
	"github.com/colstore/decimal-go/internal/xerrors"
)

// MaxPrecision is the widest decimal the 16-byte stored form holds.
const MaxPrecision = internal.MaxPrecision

// Type describes a column's declared decimal capacity.
type Type struct {
	Precision int32
	Scale     int32
}

func (t Type) String() string {
	return fmt.Sprintf("Decimal(%d,%d)", t.Precision, t.Scale)
}

// Decimal is a value stored as a 128-bit two's-complement mantissa
// interpreted at the type's scale.
type Decimal struct {
	Bytes     [16]byte
	Precision int32
	Scale     int32
}

func (d *Decimal) String() string {
	v := internal.FromInt128(d.Bytes, d.Precision)

	return internal.Format(v, d.Precision, d.Scale)
}

func (d *Decimal) BigInt() *big.Int {
	return internal.FromInt128(d.Bytes, d.Precision)
}

// Parse interprets s as a decimal number and returns its unscaled mantissa
// together with the inferred precision and scale.
func Parse(s string) (v *big.Int, precision, scale int32, err error) {
	return internal.Parse(s)
}

// Rescale converts mantissa x between scales, preserving the numeric value.
func Rescale(x *big.Int, from, to int32) (*big.Int, error) {
	return internal.Rescale(x, from, to)
}

// FromString parses s and stores it as a value of type t.
//
// It fails with ErrPrecisionOverflow when s carries more significant digits
// than t.Precision and with ErrRescaleOverflow or ErrRescaleDataLoss when the
// value cannot be brought to t.Scale exactly. Values are never truncated
// silently.
func FromString(s string, t Type) (*Decimal, error) {
	v, precision, scale, err := internal.Parse(s)
	if err != nil {
		return nil, err
	}

	if precision > t.Precision {
		return nil, xerrors.WithStackTrace(fmt.Errorf(
			"%w: value %q with precision %d does not fit into %s",
			ErrPrecisionOverflow, s, precision, t,
		))
	}

	if scale != t.Scale {
		v, err = internal.Rescale(v, scale, t.Scale)
		if err != nil {
			return nil, err
		}
	}

	return &Decimal{
		Bytes:     internal.Int128(v, t.Precision),
		Precision: t.Precision,
		Scale:     t.Scale,
	}, nil
}
