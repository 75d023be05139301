// Package inference derives the minimal decimal column type, as a
// (precision, scale) pair, from decimal values observed in untyped data.
package inference

import (
	"github.com/colstore/decimal-go/decimal"
	internal "github.com/colstore/decimal-go/internal/inference"
)

// Infer returns the minimal (precision, scale) pair that stores a decimal
// value given as digitCount significant digits times 10^exponent.
func Infer(digitCount, exponent int32) (precision, scale int32) {
	return internal.Infer(digitCount, exponent)
}

// Metadata accumulates the minimal common (precision, scale) pair over a
// sequence of observed values, for one column-inference pass.
//
// Metadata is not safe for concurrent use.
type Metadata struct {
	internal.Metadata
}

func NewMetadata() *Metadata {
	return &Metadata{Metadata: *internal.NewMetadata()}
}

// Type returns the merged column type. It reports false until at least one
// value has been folded in.
func (m *Metadata) Type() (decimal.Type, bool) {
	if !m.Observed() {
		return decimal.Type{}, false
	}

	return decimal.Type{
		Precision: m.Precision,
		Scale:     m.Scale,
	}, true
}
