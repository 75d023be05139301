package inference

import "math"

// unset marks a Metadata that has not observed any value yet. The first
// real update always wins a max-based merge against it.
const unset = math.MinInt32

// Infer returns the minimal (precision, scale) pair that stores a decimal
// value given as digitCount significant digits times 10^exponent.
//
// digitCount must be at least 1. When exponent is positive and smaller than
// digitCount the returned scale is negative; callers relying on that shape
// should see TestInferNegativeScale before changing anything here.
func Infer(digitCount, exponent int32) (precision, scale int32) {
	absExponent := exponent
	if absExponent < 0 {
		absExponent = -absExponent
	}

	var additionalZeros int32
	if digitCount <= absExponent {
		if exponent < 0 {
			// Leading zeros right of the decimal point.
			additionalZeros = absExponent - digitCount
			scale = -exponent
		} else {
			// Trailing integer zeros absent from the digit sequence.
			additionalZeros = exponent
			scale = 0
		}
	} else {
		additionalZeros = 0
		scale = -exponent
	}

	precision = digitCount + additionalZeros

	return precision, scale
}

// Metadata accumulates the minimal common (precision, scale) pair over a
// sequence of observed values. The zero value is not ready for use; start
// from NewMetadata.
//
// Metadata is not safe for concurrent use.
type Metadata struct {
	Precision int32
	Scale     int32
}

func NewMetadata() *Metadata {
	return &Metadata{
		Precision: unset,
		Scale:     unset,
	}
}

// Update folds one (precision, scale) observation into the accumulator.
//
// The merge is a single transition from the full prior state: the integer
// branch compares against the precision before this call but adds the scale
// after it. A scale-0 observation that raises precision must reserve room
// for fractional digits demanded earlier, otherwise rescaling such a value
// to the merged scale would overflow the merged precision. The evaluation
// order is load-bearing; it is not a plain max/max merge.
func (m *Metadata) Update(suggestedPrecision, suggestedScale int32) {
	prior := *m

	next := Metadata{
		Precision: max32(prior.Precision, suggestedPrecision),
		Scale:     max32(prior.Scale, suggestedScale),
	}
	if suggestedScale == 0 && suggestedPrecision > prior.Precision {
		next.Precision += next.Scale
	}

	*m = next
}

// Observed reports whether any value has been folded in.
func (m *Metadata) Observed() bool {
	return m.Precision != unset || m.Scale != unset
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}

	return b
}
