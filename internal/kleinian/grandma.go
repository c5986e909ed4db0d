package kleinian

import (
	"fmt"
	"math/cmplx"

	"github.com/william42/svg-kleinian/internal/mobius"
)

// Determinants drift from 1 only through rounding in the recipe's
// divisions; anything larger means the parameters sit on a singular
// locus of the formulas.
const detTol = 1e-9

// Grandma builds the generator pair of a two-generator group from the
// generator traces ta and tb, following "Grandma's recipe": the
// normalization that makes the commutator parabolic with trace -2.
// The product trace solves the Markov identity
//
//	tab^2 - ta*tb*tab + ta^2 + tb^2 = 0
//
// with the minus branch of the square root. Parameters that collapse
// the recipe's denominators yield ErrDegenerateTraces.
func Grandma(ta, tb complex128) (*Group, error) {
	disc := ta*ta*tb*tb - 4*(ta*ta+tb*tb)
	tab := (ta*tb - cmplx.Sqrt(disc)) / 2
	z0 := (tab - 2) * tb / (tb*tab - 2*ta + 2i*tab)

	a := mobius.Mat{
		A: ta / 2,
		B: (ta*tab - 2*tb + 4i) / ((2*tab + 4) * z0),
		C: (ta*tab - 2*tb - 4i) * z0 / (2*tab - 4),
		D: ta / 2,
	}
	b := mobius.Mat{
		A: (tb - 2i) / 2,
		B: tb / 2,
		C: tb / 2,
		D: (tb + 2i) / 2,
	}

	for _, gen := range []struct {
		name string
		m    mobius.Mat
	}{{"a", a}, {"b", b}} {
		if !gen.m.IsValid() {
			return nil, &TraceParamError{Ta: ta, Tb: tb,
				Reason: fmt.Sprintf("generator %s has non-finite entries", gen.name)}
		}
		if d := gen.m.Det(); cmplx.Abs(d-1) > detTol {
			return nil, &TraceParamError{Ta: ta, Tb: tb,
				Reason: fmt.Sprintf("generator %s determinant %v, want 1", gen.name, d)}
		}
	}
	return NewGroup(a, b), nil
}
