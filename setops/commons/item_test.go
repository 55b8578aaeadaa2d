package commons

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, Key("milk"), Normalize("Milk"))
	require.Equal(t, Key("milk"), Normalize("  MILK\t"))
	require.Equal(t, Key("whole milk"), Normalize(" Whole Milk "))
	require.Equal(t, Key(""), Normalize("   "))
	require.Equal(t, Normalize("Crème"), Item{Name: "crème "}.Key())
}

func TestCollectionKeys(t *testing.T) {
	c := Collection{Name: "A", Items: []Item{{Name: "Milk"}, {Name: " eggs"}, {Name: "milk"}}}
	require.Equal(t, []Key{"milk", "eggs", "milk"}, c.Keys())
	require.Equal(t, []string{"A", "B"}, Names([]Collection{c, {Name: "B"}}))
}

func TestEntryJSON(t *testing.T) {
	e := NewEntry(Item{ID: "1", Name: "Milk", Quantity: 2, AddedBy: "mom"}, "A", "B")
	e.TotalQuantity = 3
	data, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "Milk", decoded["name"])
	require.Equal(t, "mom", decoded["addedBy"])
	require.Equal(t, 3.0, decoded["totalQuantity"])
	require.Equal(t, []interface{}{"A", "B"}, decoded["sources"])
	require.NotContains(t, decoded, "inList")
}

func TestNewEntryCopiesSources(t *testing.T) {
	sources := []string{"A"}
	e := NewEntry(Item{Name: "Milk"}, sources...)
	sources[0] = "changed"
	require.Equal(t, []string{"A"}, e.Sources)
}

func TestEmptyResult(t *testing.T) {
	r := EmptyResult(Union)
	require.True(t, r.Empty())
	require.Equal(t, 0, r.Len())
	require.NotNil(t, r.Entries)
	require.Empty(t, r.Names())
}
