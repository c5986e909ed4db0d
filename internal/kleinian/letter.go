package kleinian

// Letter names a group generator. The numeric values index the
// per-letter tables in Group and the successor table below.
type Letter uint8

const (
	A Letter = iota // generator a
	B               // generator b
	AInv            // a inverse
	BInv            // b inverse
)

// Inv returns the inverse letter. Inverse pairs sit two apart in the
// cyclic order a, b, A, B.
func (l Letter) Inv() Letter {
	return (l + 2) % 4
}

// String uses the conventional notation: lowercase for generators,
// uppercase for their inverses.
func (l Letter) String() string {
	return [...]string{"a", "b", "A", "B"}[l]
}

// successors lists the letters allowed after l in a reduced word, in
// traversal order: one step counterclockwise in the cyclic order,
// straight on, one step clockwise. l.Inv() never appears, so words
// stay reduced.
var successors = [4][3]Letter{
	A:    {B, A, BInv},
	B:    {AInv, B, A},
	AInv: {BInv, AInv, B},
	BInv: {A, BInv, AInv},
}
