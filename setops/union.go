package setops

import (
	"github.com/tuannh982/grocery-sets/setops/commons"
	"github.com/tuannh982/grocery-sets/setops/internal"
)

func union(selected []commons.Collection) []commons.Entry {
	idx := internal.NewKeyIndex(selected)
	entries := make([]commons.Entry, 0, idx.Size())
	for _, r := range idx.Records() {
		entry := commons.NewEntry(r.First, r.Sources...)
		entry.TotalQuantity = r.Quantity
		entries = append(entries, entry)
	}
	return entries
}
