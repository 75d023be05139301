package inference

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/colstore/decimal-go/decimal"
	internal "github.com/colstore/decimal-go/internal/inference"
	"github.com/colstore/decimal-go/internal/xerrors"
)

// UpdateFromAPD folds an observed apd.Decimal into the accumulator.
//
// NaN values carry no precision or scale demand and are skipped without
// error. Infinite values cannot be stored in any fixed decimal type and
// fail with ErrNonFinite.
func (m *Metadata) UpdateFromAPD(d *apd.Decimal) error {
	switch d.Form {
	case apd.NaN, apd.NaNSignaling:
		return nil
	case apd.Finite:
	default:
		return xerrors.WithStackTrace(fmt.Errorf(
			"%w: cannot infer a decimal type from %s",
			decimal.ErrNonFinite, d.String(),
		))
	}

	m.Update(internal.Infer(int32(d.NumDigits()), d.Exponent))

	return nil
}
