package kleinian

import (
	"github.com/william42/svg-kleinian/internal/curve"
	"github.com/william42/svg-kleinian/internal/mobius"
)

// TraceOptions control the limit-set traversal.
type TraceOptions struct {
	// Depth bounds the word length. Depth <= 0 emits only the seed
	// move.
	Depth int
	// Epsilon is the termination distance: a subtree collapses to one
	// segment once its candidate point lands within Epsilon of the
	// last drawn point. Epsilon <= 0 disables the cut, leaving a pure
	// depth bound.
	Epsilon float64
	// MaxVertices caps the number of emitted line vertices when
	// positive. The walk stops early once the budget is spent, leaving
	// the polyline truncated. Zero means no cap.
	MaxVertices int
}

// DefaultTraceOptions matches the classic gasket rendering.
func DefaultTraceOptions() TraceOptions {
	return TraceOptions{Depth: 50, Epsilon: 1e-3}
}

// LimitSet traces the limit set into pb as one closed polyline: a move
// to the seed, then one line per accepted leaf word, in boundary
// order. For discrete groups the final point returns to the seed.
func (g *Group) LimitSet(pb curve.Builder, opts TraceOptions) {
	tr := tracer{group: g, pb: pb, last: seed, budget: -1}
	if opts.Epsilon > 0 {
		tr.eps2 = opts.Epsilon * opts.Epsilon
	}
	if opts.MaxVertices > 0 {
		tr.budget = opts.MaxVertices
	}
	pb.MoveTo(real(seed), imag(seed))
	for _, l := range [...]Letter{A, BInv, AInv, B} {
		tr.branch(opts.Depth-1, l, g.mats[l])
	}
}

// tracer carries the traversal state: the sink, the previously drawn
// point against which the epsilon cut is measured, and the remaining
// vertex budget (negative for unlimited).
type tracer struct {
	group  *Group
	pb     curve.Builder
	eps2   float64
	last   complex128
	budget int
}

// branch walks the subtree of reduced words extending the prefix whose
// accumulated matrix is m and whose final letter is l. The prefix's
// candidate point is the image of l's tail endpoint; the subtree
// collapses to a single segment when the level runs out or the
// candidate lands within epsilon of the last drawn point.
func (t *tracer) branch(level int, l Letter, m mobius.Mat) {
	if t.budget == 0 {
		return
	}
	z := m.Apply(t.group.ends[l])
	if level <= 0 || normSq(z-t.last) < t.eps2 {
		t.pb.LineTo(real(z), imag(z))
		t.last = z
		if t.budget > 0 {
			t.budget--
		}
		return
	}
	for _, s := range successors[l] {
		t.branch(level-1, s, m.Mul(t.group.mats[s]))
	}
}

func normSq(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}
