// Package snapshot decodes the collections a caller hands to the set operations
// engine, sanitizing fields the engine expects to be valid.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	stdmath "math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tuannh982/grocery-sets/setops/commons"
	"gopkg.in/yaml.v3"

	log "github.com/sirupsen/logrus"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type Snapshot struct {
	Collections []commons.Collection `json:"collections" yaml:"collections"`
}

type rawSnapshot struct {
	Collections []rawCollection `yaml:"collections"`
}

type rawCollection struct {
	ID    string    `yaml:"id"`
	Name  string    `yaml:"name"`
	Items []rawItem `yaml:"items"`
}

type rawItem struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Category string    `yaml:"category"`
	Quantity quantity  `yaml:"quantity"`
	Price    quantity  `yaml:"price"`
	Unit     string    `yaml:"unit"`
	AddedBy  string    `yaml:"addedBy"`
	AddedAt  timestamp `yaml:"addedAt"`
}

// quantity decodes any scalar amount (quantity or price), turning missing,
// non-numeric, negative or non-finite values into 0.
type quantity float64

func (q *quantity) UnmarshalYAML(n *yaml.Node) error {
	*q = quantity(parseQuantity(n.Value))
	return nil
}

func parseQuantity(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || stdmath.IsNaN(v) || stdmath.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// timestamp decodes RFC 3339 or date strings and numeric unix epochs, in
// seconds or milliseconds. Anything else becomes the zero time.
type timestamp time.Time

func (ts *timestamp) UnmarshalYAML(n *yaml.Node) error {
	t, ok := parseTimestamp(n.Value)
	if !ok {
		log.WithFields(log.Fields{
			"value": n.Value,
			"line":  n.Line,
		}).Debug("unparsable addedAt dropped")
	}
	*ts = timestamp(t)
	return nil
}

// epochMillisThreshold separates epoch seconds from milliseconds; 1e11 seconds is past year 5000.
const epochMillisThreshold = 1e11

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		if v >= epochMillisThreshold || v <= -epochMillisThreshold {
			return time.UnixMilli(v).UTC(), true
		}
		return time.Unix(v, 0).UTC(), true
	}
	return time.Time{}, false
}

// Decode reads a YAML or JSON snapshot. The document is either a list of
// collections or a mapping with a "collections" key.
func Decode(r io.Reader) (Snapshot, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Snapshot{}, ErrEmptySnapshot
		}
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	var raw rawSnapshot
	var err error
	if root.Kind == yaml.SequenceNode {
		err = root.Decode(&raw.Collections)
	} else {
		err = root.Decode(&raw)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot collections: %w", err)
	}
	return raw.build(), nil
}

func Load(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to open snapshot %s: %w", path, err)
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load snapshot %s: %w", path, err)
	}
	return s, nil
}

func (raw rawSnapshot) build() Snapshot {
	cs := make([]commons.Collection, 0, len(raw.Collections))
	for _, rc := range raw.Collections {
		c := commons.Collection{
			ID:    rc.ID,
			Name:  rc.Name,
			Items: make([]commons.Item, 0, len(rc.Items)),
		}
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.Name == "" {
			c.Name = c.ID
		}
		for _, ri := range rc.Items {
			it := commons.Item{
				ID:       ri.ID,
				Name:     ri.Name,
				Category: ri.Category,
				Quantity: float64(ri.Quantity),
				Price:    float64(ri.Price),
				Unit:     ri.Unit,
				AddedBy:  ri.AddedBy,
				AddedAt:  time.Time(ri.AddedAt),
			}
			if it.ID == "" {
				it.ID = uuid.NewString()
			}
			c.Items = append(c.Items, it)
		}
		cs = append(cs, c)
	}
	return Snapshot{Collections: cs}
}

// Select resolves refs by collection ID, then by case-insensitive name, in the order given.
func (s Snapshot) Select(refs ...string) ([]commons.Collection, error) {
	selected := make([]commons.Collection, 0, len(refs))
	for _, ref := range refs {
		c, ok := s.find(ref)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrCollectionNotFound, ref)
		}
		selected = append(selected, c)
	}
	return selected, nil
}

func (s Snapshot) find(ref string) (commons.Collection, bool) {
	for _, c := range s.Collections {
		if c.ID == ref {
			return c, true
		}
	}
	key := commons.Normalize(ref)
	for _, c := range s.Collections {
		if commons.Normalize(c.Name) == key {
			return c, true
		}
	}
	return commons.Collection{}, false
}
