package decimal

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/colstore/decimal-go/internal/xerrors"
)

// FromAPD stores an arbitrary-precision apd.Decimal as a value of type t.
//
// Non-finite values fail with ErrNonFinite; the conversion itself goes
// through the value's canonical textual form, so FromString's error
// contract applies to the rest.
func FromAPD(d *apd.Decimal, t Type) (*Decimal, error) {
	if d.Form != apd.Finite {
		return nil, xerrors.WithStackTrace(fmt.Errorf(
			"%w: cannot store %s into %s", ErrNonFinite, d.String(), t,
		))
	}

	return FromString(d.Text('f'), t)
}
