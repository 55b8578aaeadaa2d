package collections

type Map[K any, V any] interface {
	Contains(k K) bool
	Put(k K, v V, forced bool) error
	Get(k K) (V, error)
	// GetOrPut returns the value stored at k, storing newValue() first when k is absent.
	// The boolean reports whether the value already existed.
	GetOrPut(k K, newValue func() V) (V, bool)
	Delete(k K) error
	Size() int
	Keys() []K
	Values() []V
}
