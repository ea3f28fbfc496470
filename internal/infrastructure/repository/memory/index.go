package memory

import "strconv"

// index groups seeded records by a string key. It is built once and never
// mutated, so lookups need no locking.
type index[T any] map[string][]T

func newIndex[T any](items []T, key func(T) string) index[T] {
	ix := make(index[T])
	for _, item := range items {
		k := key(item)
		ix[k] = append(ix[k], item)
	}
	return ix
}

// list returns a copy so callers cannot mutate the seed.
func (ix index[T]) list(key string) []T {
	return append(make([]T, 0, len(ix[key])), ix[key]...)
}

func (ix index[T]) first(key string, match func(T) bool) (T, bool) {
	for _, item := range ix[key] {
		if match == nil || match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func scopedKey(leagueID string, id int64) string {
	return leagueID + ":" + strconv.FormatInt(id, 10)
}
