package decimal

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/colstore/decimal-go/internal/xerrors"
)

var (
	// ErrSyntax is returned by Parse for malformed textual input.
	ErrSyntax = errors.New("decimal: syntax error")

	// ErrPrecisionOverflow is returned when a value needs more significant
	// digits than a precision allows.
	ErrPrecisionOverflow = errors.New("decimal: precision overflow")

	// ErrRescaleOverflow is returned by Rescale when scaling up exceeds the
	// stored form's capacity.
	ErrRescaleOverflow = errors.New("decimal: rescale overflow")

	// ErrRescaleDataLoss is returned by Rescale when scaling down would
	// truncate non-zero digits.
	ErrRescaleDataLoss = errors.New("decimal: rescale would lose digits")

	// ErrNonFinite is returned when a NaN or infinite value reaches an
	// operation defined only for finite decimals.
	ErrNonFinite = errors.New("decimal: non-finite value")
)

func syntaxError(s string) error {
	return xerrors.WithStackTrace(
		fmt.Errorf("%w: %q", ErrSyntax, s),
		xerrors.WithSkipDepth(1),
	)
}

func precisionError(s string, precision int64) error {
	return xerrors.WithStackTrace(
		fmt.Errorf("%w: %q needs precision %d, maximum is %d",
			ErrPrecisionOverflow, s, precision, MaxPrecision,
		),
		xerrors.WithSkipDepth(1),
	)
}

func rescaleOverflowError(x *big.Int, from, to int32) error {
	return xerrors.WithStackTrace(
		fmt.Errorf("%w: mantissa %s from scale %d to %d",
			ErrRescaleOverflow, x.String(), from, to,
		),
		xerrors.WithSkipDepth(1),
	)
}

func rescaleDataLossError(x *big.Int, from, to int32) error {
	return xerrors.WithStackTrace(
		fmt.Errorf("%w: mantissa %s from scale %d to %d",
			ErrRescaleDataLoss, x.String(), from, to,
		),
		xerrors.WithSkipDepth(1),
	)
}
