package inference

import (
	"math/big"

	shopspring "github.com/shopspring/decimal"

	internal "github.com/colstore/decimal-go/internal/inference"
)

// UpdateFromBig folds an observed shopspring decimal into the accumulator.
// Such values are always finite, so unlike UpdateFromAPD nothing can fail.
func (m *Metadata) UpdateFromBig(d shopspring.Decimal) {
	m.Update(internal.Infer(coefficientDigits(d.Coefficient()), d.Exponent()))
}

func coefficientDigits(c *big.Int) int32 {
	if c.Sign() == 0 {
		return 1
	}

	s := c.String()
	if s[0] == '-' {
		return int32(len(s) - 1)
	}

	return int32(len(s))
}
