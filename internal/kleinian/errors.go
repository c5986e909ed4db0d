package kleinian

import (
	"errors"
	"fmt"
)

// ErrDegenerateTraces marks trace parameters whose recipe matrices
// collapse: non-finite entries or a determinant away from 1.
var ErrDegenerateTraces = errors.New("kleinian: degenerate trace parameters")

// TraceParamError reports which trace pair failed and why. It unwraps
// to ErrDegenerateTraces.
type TraceParamError struct {
	Ta, Tb complex128
	Reason string
}

func (e *TraceParamError) Error() string {
	return fmt.Sprintf("kleinian: traces ta=%v tb=%v: %s", e.Ta, e.Tb, e.Reason)
}

func (e *TraceParamError) Unwrap() error {
	return ErrDegenerateTraces
}
