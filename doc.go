// Package rectangle provides a tiny immutable `Rectangle` value whose
// dimensions can be traversed as an ordered *production sequence*.
//
// Traversing a `Rectangle` always yields exactly two `Dimension`s, first
// `{"length": l}` and then `{"width": w}`:
//
//	r := rectangle.New(10, 5)
//	for dim := range r.All() {
//		fmt.Println(dim) // {'length': 10} then {'width': 5}
//	}
//
// ## Restartable
//
// A traversal never consumes the `Rectangle`. `Rectangle.All` and
// `Rectangle.Iter` hand out a *fresh* sequence on every call, so ranging
// twice over the same value produces the same two elements twice.
// Power users who need a pull-style cursor can use `Rectangle.Iter`, each
// `Iterator` is single-use and independent from the others.
//
// ## Permissive
//
// Zero and negative dimensions are accepted as-is. Nothing in this package
// validates the values you build a `Rectangle` from, and a traversal cannot
// fail.
//
// ## Observability
//
// The `Traverser` walks rectangles while emitting structured logs through
// [`log/slog`][dep-slog] and counters through
// [`hashicorp/go-metrics`][dep-met].
//
// To move production sequences across processes, see the `pkg/flow`
// package which frames them over any `io.Writer`.
//
// [dep-slog]: https://pkg.go.dev/log/slog
// [dep-met]: https://pkg.go.dev/github.com/hashicorp/go-metrics
package rectangle
