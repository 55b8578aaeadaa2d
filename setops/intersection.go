package setops

import (
	"github.com/tuannh982/grocery-sets/setops/commons"
	"github.com/tuannh982/grocery-sets/setops/internal"
)

func intersection(selected []commons.Collection) []commons.Entry {
	idx := internal.NewKeyIndex(selected)
	sources := dedupe(commons.Names(selected))
	entries := make([]commons.Entry, 0)
	for _, r := range idx.Records() {
		if r.Positions() != idx.Collections() {
			continue
		}
		entries = append(entries, commons.NewEntry(r.First, sources...))
	}
	return entries
}

func dedupe(arr []string) []string {
	seen := make(map[string]struct{}, len(arr))
	ret := make([]string, 0, len(arr))
	for _, s := range arr {
		if _, found := seen[s]; found {
			continue
		}
		seen[s] = struct{}{}
		ret = append(ret, s)
	}
	return ret
}
