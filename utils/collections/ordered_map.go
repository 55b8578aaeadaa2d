package collections

type orderedMap[K comparable, V any] struct {
	entries map[K]V
	order   []K
}

// NewOrderedMap returns a Map whose Keys and Values follow first insertion order.
// Overwriting an existing key keeps its original position.
func NewOrderedMap[K comparable, V any]() Map[K, V] {
	return &orderedMap[K, V]{
		entries: make(map[K]V),
		order:   make([]K, 0),
	}
}

func (m *orderedMap[K, V]) Contains(k K) bool {
	if _, ok := m.entries[k]; ok {
		return true
	}
	return false
}

func (m *orderedMap[K, V]) Put(k K, v V, forced bool) error {
	if m.Contains(k) {
		if !forced {
			return ErrValueExisted
		}
		m.entries[k] = v
		return nil
	}
	m.entries[k] = v
	m.order = append(m.order, k)
	return nil
}

func (m *orderedMap[K, V]) Get(k K) (v V, err error) {
	if !m.Contains(k) {
		return v, ErrValueNotExisted
	}
	return m.entries[k], nil
}

func (m *orderedMap[K, V]) GetOrPut(k K, newValue func() V) (V, bool) {
	if v, ok := m.entries[k]; ok {
		return v, true
	}
	v := newValue()
	m.entries[k] = v
	m.order = append(m.order, k)
	return v, false
}

func (m *orderedMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return ErrValueNotExisted
	}
	delete(m.entries, k)
	for i, key := range m.order {
		if key == k {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *orderedMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *orderedMap[K, V]) Keys() []K {
	arr := make([]K, len(m.order))
	copy(arr, m.order)
	return arr
}

func (m *orderedMap[K, V]) Values() []V {
	arr := make([]V, 0, len(m.order))
	for _, k := range m.order {
		arr = append(arr, m.entries[k])
	}
	return arr
}
