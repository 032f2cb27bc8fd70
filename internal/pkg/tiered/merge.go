// Package tiered combines records read from the durable tier and the fast tier.
package tiered

// MergeByPK combines durable and fast records into one record per primary key.
// Durable records are inserted first and fast records second, so a fast record
// always shadows a durable record with the same key. Within one tier the last
// record in iteration order wins. The order of the result is unspecified.
func MergeByPK[T any, K comparable](durable []T, fast []T, pk func(T) K) []T {
	byPK := make(map[K]T, len(durable)+len(fast))
	for _, record := range durable {
		byPK[pk(record)] = record
	}
	for _, record := range fast {
		byPK[pk(record)] = record
	}

	merged := make([]T, 0, len(byPK))
	for _, record := range byPK {
		merged = append(merged, record)
	}
	return merged
}
