package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedMap(t *testing.T) {
	m := NewOrderedMap[string, int]()
	require.Nil(t, m.Put("cc", 1, false))
	require.Nil(t, m.Put("aa", 2, false))
	require.Nil(t, m.Put("bb", 3, false))
	require.ErrorIs(t, m.Put("aa", 9, false), ErrValueExisted)
	require.Nil(t, m.Put("aa", 4, true))

	require.Equal(t, []string{"cc", "aa", "bb"}, m.Keys())
	require.Equal(t, []int{1, 4, 3}, m.Values())

	v, err := m.Get("aa")
	require.Nil(t, err)
	require.Equal(t, 4, v)
	_, err = m.Get("dd")
	require.ErrorIs(t, err, ErrValueNotExisted)

	require.Nil(t, m.Delete("cc"))
	require.ErrorIs(t, m.Delete("cc"), ErrValueNotExisted)
	require.Equal(t, []string{"aa", "bb"}, m.Keys())
	require.Equal(t, 2, m.Size())
}

func TestOrderedMapGetOrPut(t *testing.T) {
	type counter struct{ n int }
	m := NewOrderedMap[string, *counter]()
	for _, k := range []string{"b", "a", "b", "b"} {
		c, _ := m.GetOrPut(k, func() *counter { return &counter{} })
		c.n++
	}
	c, existed := m.GetOrPut("b", func() *counter { return &counter{} })
	require.True(t, existed)
	require.Equal(t, 3, c.n)
	_, existed = m.GetOrPut("z", func() *counter { return &counter{} })
	require.False(t, existed)
	require.Equal(t, []string{"b", "a", "z"}, m.Keys())
}

func TestOrderedMapKeysIsACopy(t *testing.T) {
	m := NewOrderedMap[string, int]()
	_ = m.Put("a", 1, false)
	keys := m.Keys()
	keys[0] = "mutated"
	require.Equal(t, []string{"a"}, m.Keys())
}
