package setops

import (
	"fmt"
	"time"

	"github.com/tuannh982/grocery-sets/setops/commons"
	"github.com/tuannh982/grocery-sets/utils/math"
)

// MaxCartesianPairs caps the size of a cartesian product result.
const MaxCartesianPairs = 50

func cartesianProduct(a, b commons.Collection, now time.Time) []commons.Entry {
	entries := make([]commons.Entry, 0, math.Min(len(a.Items)*len(b.Items), MaxCartesianPairs))
	for _, x := range a.Items {
		for _, y := range b.Items {
			if len(entries) == MaxCartesianPairs {
				return entries
			}
			entries = append(entries, commons.NewEntry(pair(x, y, now), a.Name, b.Name))
		}
	}
	return entries
}

func pair(x, y commons.Item, now time.Time) commons.Item {
	unit := x.Unit
	if x.Unit != y.Unit {
		unit = fmt.Sprintf("%s+%s", x.Unit, y.Unit)
	}
	return commons.Item{
		ID:       fmt.Sprintf("%s-%s", x.ID, y.ID),
		Name:     fmt.Sprintf("%s + %s", x.Name, y.Name),
		Category: fmt.Sprintf("%s & %s", x.Category, y.Category),
		Quantity: x.Quantity + y.Quantity,
		Unit:     unit,
		AddedBy:  fmt.Sprintf("%s & %s", x.AddedBy, y.AddedBy),
		AddedAt:  now,
	}
}
