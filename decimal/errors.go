package decimal

import (
	internal "github.com/colstore/decimal-go/internal/decimal"
)

var (
	// ErrSyntax is returned for malformed textual input.
	ErrSyntax = internal.ErrSyntax

	// ErrPrecisionOverflow is returned when a value carries more significant
	// digits than the target type's precision.
	ErrPrecisionOverflow = internal.ErrPrecisionOverflow

	// ErrRescaleOverflow is returned when bringing a value to the target
	// scale exceeds the stored form's capacity.
	ErrRescaleOverflow = internal.ErrRescaleOverflow

	// ErrRescaleDataLoss is returned when bringing a value to the target
	// scale would truncate non-zero digits.
	ErrRescaleDataLoss = internal.ErrRescaleDataLoss

	// ErrNonFinite is returned when a NaN or infinite value reaches a
	// conversion defined only for finite decimals.
	ErrNonFinite = internal.ErrNonFinite
)
