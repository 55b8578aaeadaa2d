package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuannh982/grocery-sets/setops/commons"
)

const testSnapshot = `
collections:
  - id: a
    name: A
    items:
      - {id: a1, name: Milk, category: Dairy, quantity: 2, price: 3.99, unit: liters, addedBy: mom, addedAt: 1700000000000}
      - {id: a2, name: Bread, category: Bakery, quantity: 1, unit: loaf, addedBy: dad}
  - id: b
    name: B
    items:
      - {id: b1, name: milk, category: Dairy, quantity: 1, unit: liters, addedBy: kid}
      - {id: b2, name: Eggs, category: Dairy, quantity: 12, unit: pieces, addedBy: mom}
`

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lists.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSnapshot), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestComputeJSON(t *testing.T) {
	path := writeSnapshot(t)
	out, err := run(t, "compute", "union", "-i", path, "-s", "A", "-s", "B", "-f", "json")
	require.NoError(t, err)

	var res commons.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, commons.Union, res.Operation)
	require.Equal(t, []string{"Milk", "Bread", "Eggs"}, res.Names())
	require.Equal(t, 3.0, res.Entries[0].TotalQuantity)
	require.Equal(t, 3.99, res.Entries[0].Price)
	require.Equal(t, 2023, res.Entries[0].AddedAt.Year())
}

func TestComputeKeepsPrice(t *testing.T) {
	path := writeSnapshot(t)
	out, err := run(t, "compute", "difference", "-i", path, "-s", "A", "-s", "B", "-f", "yaml")
	require.NoError(t, err)
	require.Contains(t, out, "name: Bread")
	require.Contains(t, out, "price: 0")

	out, err = run(t, "compute", "intersection", "-i", path, "-s", "A", "-s", "B", "-f", "json")
	require.NoError(t, err)
	require.Contains(t, out, `"price": 3.99`)
}

func TestComputeTable(t *testing.T) {
	path := writeSnapshot(t)
	out, err := run(t, "compute", "symmetric", "-i", path, "-s", "a", "-s", "b")
	require.NoError(t, err)
	require.Contains(t, out, "== symmetric (2)")
	require.Contains(t, out, "list=1")
	require.Contains(t, out, "list=2")
}

func TestComputeUnmetPreconditionPrintsNoResults(t *testing.T) {
	path := writeSnapshot(t)
	out, err := run(t, "compute", "cartesian", "-i", path, "-s", "A", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "no results")
}

func TestComputeErrors(t *testing.T) {
	path := writeSnapshot(t)
	_, err := run(t, "compute", "average", "-i", path, "-s", "A")
	require.ErrorIs(t, err, commons.ErrUnknownOperation)

	_, err = run(t, "compute", "union", "-s", "A")
	require.ErrorIs(t, err, errNoInput)

	_, err = run(t, "compute", "union", "-i", path, "-s", "A", "-s", "Z")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "collection not found"))
}

func TestAllTable(t *testing.T) {
	path := writeSnapshot(t)
	out, err := run(t, "all", "-i", path, "-s", "A", "-s", "B")
	require.NoError(t, err)
	require.Contains(t, out, "OPERATION")
	for _, op := range commons.Operations {
		require.Contains(t, out, "== "+op.String())
	}
}

func TestAnalyticsYAML(t *testing.T) {
	path := writeSnapshot(t)
	out, err := run(t, "analytics", "-i", path, "-f", "yaml")
	require.NoError(t, err)
	require.Contains(t, out, "totalLists: 2")
	require.Contains(t, out, "totalItems: 4")
	require.Contains(t, out, "averageItemsPerList: 2")
	require.Contains(t, out, "avgPerList: 1.5")
	require.Contains(t, out, "label: Dairy")
}

func TestInvalidLogLevel(t *testing.T) {
	path := writeSnapshot(t)
	_, err := run(t, "analytics", "-i", path, "--log-level", "loud")
	require.Error(t, err)
}
