package collections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashSet(t *testing.T) {
	type Mock struct {
		A string
		B int
	}
	s := NewHashSet(func(v *Mock) string {
		return v.A
	})
	require.Nil(t, s.Add(&Mock{
		A: "aa",
		B: 22,
	}))
	require.ErrorIs(t, s.Add(&Mock{
		A: "aa",
		B: 23,
	}), ErrValueExisted)
	require.Nil(t, s.Add(&Mock{
		A: "bb",
		B: 55,
	}))
	require.Equal(t, 2, s.Size())
	require.Equal(t, true, s.Contains(&Mock{A: "aa"}))
	require.Equal(t, false, s.Contains(&Mock{A: "cc"}))
	require.Equal(t, 2, len(s.Entries()))
	require.Nil(t, s.Remove(&Mock{A: "bb"}))
	require.ErrorIs(t, s.Remove(&Mock{A: "bb"}), ErrValueNotExisted)
	require.Equal(t, 1, s.Size())
}

func TestHashSetOfKeepsFirstValue(t *testing.T) {
	s := NewHashSetOf(strings.ToLower, "Milk", "MILK", "eggs")
	require.Equal(t, 2, s.Size())
	require.True(t, s.Contains("milk"))
	require.Contains(t, s.Entries(), "Milk")
	require.NotContains(t, s.Entries(), "MILK")
}

func TestMissing(t *testing.T) {
	s := NewHashSetOf(strings.ToLower, "milk")
	got := Missing(s, []string{"Bread", "Milk", "bread", "Eggs"})
	require.Equal(t, []string{"Bread", "bread", "Eggs"}, got)
	require.Empty(t, Missing(s, nil))
}
