package internal

import (
	"github.com/tuannh982/grocery-sets/setops/commons"
	"github.com/tuannh982/grocery-sets/utils/collections"
)

// KeyRecord aggregates every occurrence of one normalized key across a selection.
type KeyRecord struct {
	Key commons.Key
	// First is the first occurrence in selection order.
	First commons.Item
	// Sources holds the names of collections containing the key, deduplicated, in encounter order.
	Sources   []string
	Quantity  float64
	positions collections.Set[int]
}

// Positions reports in how many distinct selected collections the key appears.
func (r *KeyRecord) Positions() int {
	return r.positions.Size()
}

type KeyIndex interface {
	// Records returns the records in first-occurrence order.
	Records() []*KeyRecord
	Size() int
	// Collections is the number of collections indexed, counting repeated references separately.
	Collections() int
}

type keyIndex struct {
	records     collections.Map[commons.Key, *KeyRecord]
	collections int
}

func identity(p int) int {
	return p
}

// NewKeyIndex indexes the concatenation of cs in the order given. Collections are
// identified by their position, so passing the same collection twice is two members.
func NewKeyIndex(cs []commons.Collection) KeyIndex {
	idx := &keyIndex{
		records:     collections.NewOrderedMap[commons.Key, *KeyRecord](),
		collections: len(cs),
	}
	for p, c := range cs {
		for _, it := range c.Items {
			idx.add(p, c.Name, it)
		}
	}
	return idx
}

func (idx *keyIndex) add(position int, source string, it commons.Item) {
	k := it.Key()
	record, _ := idx.records.GetOrPut(k, func() *KeyRecord {
		return &KeyRecord{
			Key:       k,
			First:     it,
			Sources:   make([]string, 0, 1),
			positions: collections.NewHashSet(identity),
		}
	})
	record.Quantity += it.Quantity
	_ = record.positions.Add(position)
	if !containsString(record.Sources, source) {
		record.Sources = append(record.Sources, source)
	}
}

func containsString(arr []string, s string) bool {
	for _, v := range arr {
		if v == s {
			return true
		}
	}
	return false
}

func (idx *keyIndex) Records() []*KeyRecord {
	return idx.records.Values()
}

func (idx *keyIndex) Size() int {
	return idx.records.Size()
}

func (idx *keyIndex) Collections() int {
	return idx.collections
}

// KeySet is the set of normalized keys of the items in cs.
func KeySet(cs ...commons.Collection) collections.Set[commons.Item] {
	var items []commons.Item
	for _, c := range cs {
		items = append(items, c.Items...)
	}
	return collections.NewHashSetOf(commons.ItemKey, items...)
}
