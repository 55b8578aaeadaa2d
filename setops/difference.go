package setops

import (
	"github.com/tuannh982/grocery-sets/setops/commons"
	"github.com/tuannh982/grocery-sets/setops/internal"
	"github.com/tuannh982/grocery-sets/utils/collections"
)

// difference is anchored on the first collection and keeps its duplicates.
func difference(selected []commons.Collection) []commons.Entry {
	anchor := selected[0]
	others := internal.KeySet(selected[1:]...)
	return entriesOf(collections.Missing(others, anchor.Items), anchor.Name, 0)
}

func symmetricDifference(a, b commons.Collection) []commons.Entry {
	onlyA := collections.Missing(internal.KeySet(b), a.Items)
	onlyB := collections.Missing(internal.KeySet(a), b.Items)
	entries := make([]commons.Entry, 0, len(onlyA)+len(onlyB))
	entries = append(entries, entriesOf(onlyA, a.Name, 1)...)
	entries = append(entries, entriesOf(onlyB, b.Name, 2)...)
	return entries
}

func entriesOf(items []commons.Item, source string, inList int) []commons.Entry {
	entries := make([]commons.Entry, 0, len(items))
	for _, it := range items {
		entry := commons.NewEntry(it, source)
		entry.InList = inList
		entries = append(entries, entry)
	}
	return entries
}
