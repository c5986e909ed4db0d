// Package mobius implements 2x2 complex matrices acting on the Riemann
// sphere as Mobius transformations z -> (Az+B)/(Cz+D).
package mobius

import (
	"math"
	"math/cmplx"
)

// Mat is a 2x2 complex matrix, row-major:
//
//	[ A  B ]
//	[ C  D ]
//
// The zero value is the zero matrix. Methods never mutate the receiver.
type Mat struct {
	A, B, C, D complex128
}

// Identity returns the identity matrix.
func Identity() Mat {
	return Mat{A: 1, D: 1}
}

// Mul returns the matrix product m*n, receiver on the left.
func (m Mat) Mul(n Mat) Mat {
	return Mat{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// Adj returns the adjugate. For determinant-1 matrices the adjugate is
// the inverse, so group inverses need no division.
func (m Mat) Adj() Mat {
	return Mat{A: m.D, B: -m.B, C: -m.C, D: m.A}
}

// Apply evaluates the Mobius transformation at z.
func (m Mat) Apply(z complex128) complex128 {
	return (m.A*z + m.B) / (m.C*z + m.D)
}

// Det returns the determinant A*D - B*C.
func (m Mat) Det() complex128 {
	return m.A*m.D - m.B*m.C
}

// Trace returns A + D.
func (m Mat) Trace() complex128 {
	return m.A + m.D
}

// IsValid reports whether every entry is finite.
func (m Mat) IsValid() bool {
	for _, v := range [...]complex128{m.A, m.B, m.C, m.D} {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return false
		}
	}
	return true
}

// Inf is the point-at-infinity sentinel returned by FixedPoint when the
// attracting fixed point is not in the finite plane.
var Inf = complex(math.Inf(1), 0)

// FixedPoint returns the attracting fixed point of the transformation.
//
// When C == 0 the map is affine: the attracting fixed point is Inf if
// |A| > |D|, otherwise B/(D-A). When C != 0 the fixed points solve
// Cz^2 + (D-A)z - B = 0; the attracting root is selected by negating
// the square root of the discriminant when Re(Trace) > 0. Parabolic
// maps have a double root, so the sign does not matter there.
func (m Mat) FixedPoint() complex128 {
	if m.C == 0 {
		if normSq(m.A) > normSq(m.D) {
			return Inf
		}
		return m.B / (m.D - m.A)
	}
	s := cmplx.Sqrt((m.D-m.A)*(m.D-m.A) + 4*m.B*m.C)
	if real(m.Trace()) > 0 {
		s = -s
	}
	return (m.A - m.D - s) / (2 * m.C)
}

func normSq(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}
