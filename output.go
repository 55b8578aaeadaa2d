package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/tuannh982/grocery-sets/analytics"
	"github.com/tuannh982/grocery-sets/setops/commons"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func encode(w io.Writer, f string, v interface{}) error {
	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}

func printResults(w io.Writer, f string, results []commons.Result) error {
	if f != formatTable {
		if len(results) == 1 {
			return encode(w, f, results[0])
		}
		return encode(w, f, results)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "== %s (%d)\n", res.Operation, res.Len())
		if res.Empty() {
			fmt.Fprintln(tw, "no results")
			continue
		}
		fmt.Fprintln(tw, "NAME\tCATEGORY\tQUANTITY\tUNIT\tPRICE\tADDED BY\tSOURCES\tEXTRA")
		for _, e := range res.Entries {
			fmt.Fprintf(tw, "%s\t%s\t%g\t%s\t%g\t%s\t%s\t%s\n",
				e.Name, e.Category, e.Quantity, e.Unit, e.Price, e.AddedBy, strings.Join(e.Sources, ", "), extra(res.Operation, e))
		}
	}
	return tw.Flush()
}

func extra(op commons.OperationKind, e commons.Entry) string {
	switch op {
	case commons.Union:
		return fmt.Sprintf("total=%g", e.TotalQuantity)
	case commons.SymmetricDifference:
		return fmt.Sprintf("list=%d", e.InList)
	default:
		return ""
	}
}

func printCounts(w io.Writer, counts []analytics.OperationCount) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OPERATION\tCOUNT")
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", c.Operation, c.Count)
	}
	return tw.Flush()
}

func printSummary(w io.Writer, f string, s analytics.Summary) error {
	if f != formatTable {
		return encode(w, f, s)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "lists: %d, items: %d, avg items/list: %g\n\n", s.TotalLists, s.TotalItems, s.AverageItemsPerList)
	printShares(tw, "CATEGORY", s.Categories)
	fmt.Fprintln(tw)
	printShares(tw, "MEMBER", s.Members)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "ITEM\tCOUNT\tQUANTITY")
	for _, it := range s.TopItems {
		fmt.Fprintf(tw, "%s\t%d\t%g\n", it.Name, it.Count, it.Quantity)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "LIST\tITEMS\tDISTINCT\tCATEGORIES\tQUANTITY")
	for _, l := range s.Lists {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%g\n", l.Name, l.Items, l.DistinctItems, l.Categories, l.TotalQuantity)
	}
	return tw.Flush()
}

func printShares(w io.Writer, header string, shares []analytics.Share) {
	fmt.Fprintf(w, "%s\tCOUNT\tSHARE\tAVG/LIST\n", header)
	for _, s := range shares {
		fmt.Fprintf(w, "%s\t%d\t%d%%\t%g\n", s.Label, s.Count, s.Percentage, s.AvgPerList)
	}
}
