// Package kleinian builds two-generator Kleinian groups from trace
// parameters and traces their limit sets as closed polylines.
//
// It provides:
//   - Letter: the four-letter generator alphabet with its cyclic word
//     order and per-letter tail endpoints
//   - Grandma: the parabolic-commutator generator recipe taking the
//     two generator traces (ta, tb)
//   - Group: the generator bag with its endpoint table
//   - LimitSet: depth-first traversal of reduced words emitting the
//     limit-set polyline to a curve.Builder
package kleinian
