// Package analytics derives chart data from collections and operation results.
package analytics

import (
	"sort"

	"github.com/tuannh982/grocery-sets/setops/commons"
	"github.com/tuannh982/grocery-sets/utils/collections"
	"github.com/tuannh982/grocery-sets/utils/math"
)

const summaryTopItems = 5

type OperationCount struct {
	Operation commons.OperationKind `json:"operation" yaml:"operation"`
	Count     int                   `json:"count" yaml:"count"`
}

// Share is the number of items carrying one label and its percentage of all items.
// AvgPerList averages Count over the lists holding at least one such item.
type Share struct {
	Label      string  `json:"label" yaml:"label"`
	Count      int     `json:"count" yaml:"count"`
	Percentage int     `json:"percentage" yaml:"percentage"`
	Lists      int     `json:"lists" yaml:"lists"`
	AvgPerList float64 `json:"avgPerList" yaml:"avgPerList"`
}

type ItemFrequency struct {
	Key      commons.Key `json:"key" yaml:"key"`
	Name     string      `json:"name" yaml:"name"`
	Count    int         `json:"count" yaml:"count"`
	Quantity float64     `json:"quantity" yaml:"quantity"`
}

type ListStat struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Items         int     `json:"items" yaml:"items"`
	DistinctItems int     `json:"distinctItems" yaml:"distinctItems"`
	Categories    int     `json:"categories" yaml:"categories"`
	TotalQuantity float64 `json:"totalQuantity" yaml:"totalQuantity"`
}

type Summary struct {
	TotalLists          int             `json:"totalLists" yaml:"totalLists"`
	TotalItems          int             `json:"totalItems" yaml:"totalItems"`
	AverageItemsPerList float64         `json:"averageItemsPerList" yaml:"averageItemsPerList"`
	Categories          []Share         `json:"categories" yaml:"categories"`
	Members             []Share         `json:"members" yaml:"members"`
	TopItems            []ItemFrequency `json:"topItems" yaml:"topItems"`
	Lists               []ListStat      `json:"lists" yaml:"lists"`
}

// OperationCounts returns the result size of each operation present in results, in display order.
func OperationCounts(results map[commons.OperationKind]commons.Result) []OperationCount {
	counts := make([]OperationCount, 0, len(results))
	for _, op := range commons.Operations {
		r, ok := results[op]
		if !ok {
			continue
		}
		counts = append(counts, OperationCount{Operation: op, Count: r.Len()})
	}
	return counts
}

func CategoryBreakdown(cs []commons.Collection) []Share {
	return shares(cs, func(it commons.Item) string { return it.Category })
}

func MemberContributions(cs []commons.Collection) []Share {
	return shares(cs, func(it commons.Item) string { return it.AddedBy })
}

type tally struct {
	count int
	lists collections.Set[int]
}

func listPosition(p int) int {
	return p
}

func shares(cs []commons.Collection, label func(commons.Item) string) []Share {
	tallies := collections.NewOrderedMap[string, *tally]()
	total := 0
	for p, c := range cs {
		for _, it := range c.Items {
			t, _ := tallies.GetOrPut(label(it), func() *tally {
				return &tally{lists: collections.NewHashSet(listPosition)}
			})
			t.count++
			_ = t.lists.Add(p)
			total++
		}
	}
	arr := make([]Share, 0, tallies.Size())
	for _, l := range tallies.Keys() {
		t, _ := tallies.Get(l)
		arr = append(arr, Share{
			Label:      l,
			Count:      t.count,
			Percentage: math.Percentage(t.count, total),
			Lists:      t.lists.Size(),
			AvgPerList: math.Ratio(t.count, t.lists.Size()),
		})
	}
	sort.SliceStable(arr, func(i, j int) bool {
		return arr[i].Count > arr[j].Count
	})
	return arr
}

// TopItems returns the n most frequent items by normalized name, all of them when n <= 0.
func TopItems(cs []commons.Collection, n int) []ItemFrequency {
	freq := collections.NewOrderedMap[commons.Key, *ItemFrequency]()
	for _, c := range cs {
		for _, it := range c.Items {
			f, _ := freq.GetOrPut(it.Key(), func() *ItemFrequency {
				return &ItemFrequency{Key: it.Key(), Name: it.Name}
			})
			f.Count++
			f.Quantity += it.Quantity
		}
	}
	arr := make([]ItemFrequency, 0, freq.Size())
	for _, f := range freq.Values() {
		arr = append(arr, *f)
	}
	sort.SliceStable(arr, func(i, j int) bool {
		return arr[i].Count > arr[j].Count
	})
	if n > 0 && len(arr) > n {
		arr = arr[:n]
	}
	return arr
}

func ListStats(cs []commons.Collection) []ListStat {
	stats := make([]ListStat, 0, len(cs))
	for _, c := range cs {
		keys := collections.NewHashSetOf(func(k commons.Key) commons.Key { return k }, c.Keys()...)
		categories := collections.NewHashSet(func(s string) string { return s })
		quantities := make([]float64, 0, len(c.Items))
		for _, it := range c.Items {
			_ = categories.Add(it.Category)
			quantities = append(quantities, it.Quantity)
		}
		stats = append(stats, ListStat{
			ID:            c.ID,
			Name:          c.Name,
			Items:         len(c.Items),
			DistinctItems: keys.Size(),
			Categories:    categories.Size(),
			TotalQuantity: math.Sum(quantities...),
		})
	}
	return stats
}

func Summarize(cs []commons.Collection) Summary {
	total := 0
	for _, c := range cs {
		total += len(c.Items)
	}
	return Summary{
		TotalLists:          len(cs),
		TotalItems:          total,
		AverageItemsPerList: math.Ratio(total, len(cs)),
		Categories:          CategoryBreakdown(cs),
		Members:             MemberContributions(cs),
		TopItems:            TopItems(cs, summaryTopItems),
		Lists:               ListStats(cs),
	}
}
