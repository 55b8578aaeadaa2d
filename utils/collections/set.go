package collections

type Set[V any] interface {
	Contains(v V) bool
	Add(v V) error
	Remove(v V) error
	Size() int
	Entries() []V
}

// Missing returns the values not contained in s, keeping their order and duplicates.
func Missing[V any](s Set[V], values []V) []V {
	arr := make([]V, 0, len(values))
	for _, v := range values {
		if !s.Contains(v) {
			arr = append(arr, v)
		}
	}
	return arr
}
