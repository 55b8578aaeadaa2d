package setops

import (
	"github.com/tuannh982/grocery-sets/setops/commons"
	"github.com/tuannh982/grocery-sets/setops/internal"

	log "github.com/sirupsen/logrus"
)

// complement walks item instances of universe, so equal names in different
// collections are kept as separate entries.
func (e *Engine) complement(selected commons.Collection, universe []commons.Collection) []commons.Entry {
	selectedKeys := internal.KeySet(selected)
	owners := ownersByID(universe)
	entries := make([]commons.Entry, 0)
	unknown := 0
	for _, c := range universe {
		for _, it := range c.Items {
			if selectedKeys.Contains(it) {
				continue
			}
			source, found := owners[it.ID]
			if !found {
				source = commons.UnknownSource
				unknown++
			}
			entries = append(entries, commons.NewEntry(it, source))
		}
	}
	if unknown > 0 {
		e.log.WithFields(log.Fields{
			"operation": commons.Complement.String(),
			"unknown":   unknown,
		}).Debug("could not attribute complement entries to a collection")
	}
	return entries
}

// ownersByID maps each item id to the first collection of universe holding it.
func ownersByID(universe []commons.Collection) map[string]string {
	owners := make(map[string]string)
	for _, c := range universe {
		for _, it := range c.Items {
			if it.ID == "" {
				continue
			}
			if _, found := owners[it.ID]; !found {
				owners[it.ID] = c.Name
			}
		}
	}
	return owners
}
