// Package nestly offers null-safe evaluation of nested attribute accessor chains.
// It executes a caller supplied accessor (e.g. func() string { return a.B.C.Name }),
// converts a nil dereference raised anywhere along the chain into a nil result,
// and exposes nil, blank, empty and equality predicates built on that single
// primitive. Any panic other than a nil dereference propagates unchanged.
package nestly
