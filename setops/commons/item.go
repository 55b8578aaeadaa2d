package commons

import (
	"fmt"
	"strings"
	"time"
)

// Key is the identity of an item for set purposes: its trimmed, lowercased name.
type Key string

func Normalize(name string) Key {
	return Key(strings.ToLower(strings.TrimSpace(name)))
}

type Item struct {
	ID       string    `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Category string    `json:"category" yaml:"category"`
	Quantity float64   `json:"quantity" yaml:"quantity"`
	Price    float64   `json:"price" yaml:"price"`
	Unit     string    `json:"unit" yaml:"unit"`
	AddedBy  string    `json:"addedBy" yaml:"addedBy"`
	AddedAt  time.Time `json:"addedAt" yaml:"addedAt"`
}

func (i Item) Key() Key {
	return Normalize(i.Name)
}

func ItemKey(i Item) Key {
	return i.Key()
}

func (i Item) String() string {
	return fmt.Sprintf("(n=%s,c=%s,q=%g%s)", i.Name, i.Category, i.Quantity, i.Unit)
}

type Collection struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Items []Item `json:"items" yaml:"items"`
}

// Keys lists the key of every item in order, duplicates included.
func (c Collection) Keys() []Key {
	keys := make([]Key, 0, len(c.Items))
	for _, it := range c.Items {
		keys = append(keys, it.Key())
	}
	return keys
}

func (c Collection) String() string {
	items := make([]string, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, it.String())
	}
	return fmt.Sprintf("(id=%s,name=%s,items=%s)", c.ID, c.Name, items)
}

func Names(collections []Collection) []string {
	names := make([]string, 0, len(collections))
	for _, c := range collections {
		names = append(names, c.Name)
	}
	return names
}
