package grouping

// Group is one bucket produced by GroupBy.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupBy buckets items by key. Groups appear in the order their key is first seen and
// items keep their input order, so sorting the result stably keeps ties in fetch order.
func GroupBy[K comparable, T any](items []T, key func(T) K) []Group[K, T] {
	index := make(map[K]int)
	groups := make([]Group[K, T], 0)
	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// Partition splits items in two, keeping input order on both sides.
func Partition[T any](items []T, pred func(T) bool) (matching []T, rest []T) {
	for _, item := range items {
		if pred(item) {
			matching = append(matching, item)
		} else {
			rest = append(rest, item)
		}
	}
	return matching, rest
}
