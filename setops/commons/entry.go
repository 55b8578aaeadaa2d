package commons

import "fmt"

// UnknownSource labels an entry whose owning collection could not be determined.
const UnknownSource = "Unknown"

type Entry struct {
	Item          `yaml:",inline"`
	Sources       []string `json:"sources" yaml:"sources"`
	TotalQuantity float64  `json:"totalQuantity,omitempty" yaml:"totalQuantity,omitempty"`
	InList        int      `json:"inList,omitempty" yaml:"inList,omitempty"`
}

func NewEntry(it Item, sources ...string) Entry {
	s := make([]string, len(sources))
	copy(s, sources)
	return Entry{
		Item:    it,
		Sources: s,
	}
}

func (e Entry) String() string {
	return fmt.Sprintf("(n=%s,q=%g,sources=%v)", e.Name, e.Quantity, e.Sources)
}

type Result struct {
	Operation OperationKind `json:"operation" yaml:"operation"`
	Entries   []Entry       `json:"entries" yaml:"entries"`
}

func EmptyResult(op OperationKind) Result {
	return Result{
		Operation: op,
		Entries:   make([]Entry, 0),
	}
}

func (r Result) Len() int {
	return len(r.Entries)
}

func (r Result) Empty() bool {
	return len(r.Entries) == 0
}

func (r Result) Names() []string {
	names := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		names = append(names, e.Name)
	}
	return names
}
