package kleinian

import (
	"github.com/william42/svg-kleinian/internal/mobius"
)

// seed anchors the endpoint tails and opens the polyline. It is the
// parabolic fixed point of the commutator abAB under the recipe's
// normalization, which is what lets the traced curve close up.
const seed complex128 = 1

// Group holds the four generator matrices and the per-letter endpoint
// table used by the limit-set traversal.
type Group struct {
	mats [4]mobius.Mat
	ends [4]complex128
}

// NewGroup assembles the generator bag for the pair (a, b). Inverses
// are taken by adjugate, so both matrices must have determinant 1.
func NewGroup(a, b mobius.Mat) *Group {
	g := &Group{}
	g.mats[A] = a
	g.mats[B] = b
	g.mats[AInv] = a.Adj()
	g.mats[BInv] = b.Adj()

	// Endpoint of the infinite repeating tail attached to words ending
	// in each letter, anchored at the seed.
	g.ends[A] = g.mats[BInv].Mul(g.mats[AInv]).Apply(seed)
	g.ends[B] = g.mats[BInv].Apply(seed)
	g.ends[AInv] = seed
	g.ends[BInv] = g.mats[AInv].Apply(seed)
	return g
}

// Mat returns the generator matrix for l.
func (g *Group) Mat(l Letter) mobius.Mat {
	return g.mats[l]
}

// Endpoint returns the tail endpoint for words ending in l.
func (g *Group) Endpoint(l Letter) complex128 {
	return g.ends[l]
}

// Commutator returns a b a⁻¹ b⁻¹. Recipe groups make it parabolic
// with trace -2, fixing the seed.
func (g *Group) Commutator() mobius.Mat {
	return g.mats[A].Mul(g.mats[B]).Mul(g.mats[AInv]).Mul(g.mats[BInv])
}
