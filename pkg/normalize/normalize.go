// Package normalize builds the byId/allIds payload shape the frontend
// state cache consumes.
package normalize

type Normalized[T any] struct {
	ByID   map[uint]T `json:"byId"`
	AllIDs []uint     `json:"allIds"`
}

// Data indexes items by the id extracted from each element, preserving
// input order in AllIDs.
func Data[T any](items []T, id func(T) uint) Normalized[T] {
	out := Normalized[T]{
		ByID:   make(map[uint]T, len(items)),
		AllIDs: make([]uint, 0, len(items)),
	}
	for _, it := range items {
		k := id(it)
		if _, seen := out.ByID[k]; !seen {
			out.AllIDs = append(out.AllIDs, k)
		}
		out.ByID[k] = it
	}
	return out
}

// Empty is the zero payload for endpoints that must still return the
// normalized shape when nothing matches.
func Empty[T any]() Normalized[T] {
	return Normalized[T]{ByID: map[uint]T{}, AllIDs: []uint{}}
}
