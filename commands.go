package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tuannh982/grocery-sets/analytics"
	"github.com/tuannh982/grocery-sets/setops"
	"github.com/tuannh982/grocery-sets/setops/commons"
	"github.com/tuannh982/grocery-sets/snapshot"

	log "github.com/sirupsen/logrus"
)

var errNoInput = errors.New("no snapshot given, use --input or " + envInput)

func newComputeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compute <operation>",
		Short: "Run one set operation over the selected lists",
		Long: `Run one set operation over the selected lists.

Operations: union, intersection, difference, symmetric, complement, cartesian.
Complement takes a single list and uses every list of the snapshot as the universe.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := commons.ParseOperation(args[0])
			if err != nil {
				return err
			}
			s, selected, err := opts.load(true)
			if err != nil {
				return err
			}
			if err := setops.CheckPreconditions(op, len(selected)); err != nil {
				log.Warn(err)
			}
			res := newEngine().Compute(op, selected, s.Collections)
			return printResults(cmd.OutOrStdout(), opts.format, []commons.Result{res})
		},
	}
}

func newAllCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every set operation over the selected lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, selected, err := opts.load(true)
			if err != nil {
				return err
			}
			all := newEngine().ComputeAll(selected, s.Collections)
			results := make([]commons.Result, 0, len(all))
			for _, op := range commons.Operations {
				results = append(results, all[op])
			}
			if opts.format == formatTable {
				if err := printCounts(cmd.OutOrStdout(), analytics.OperationCounts(all)); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return printResults(cmd.OutOrStdout(), opts.format, results)
		},
	}
}

func newAnalyticsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Summarize categories, members and items across all lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := opts.load(false)
			if err != nil {
				return err
			}
			return printSummary(cmd.OutOrStdout(), opts.format, analytics.Summarize(s.Collections))
		},
	}
}

func (opts *options) load(withSelection bool) (snapshot.Snapshot, []commons.Collection, error) {
	if opts.input == "" {
		return snapshot.Snapshot{}, nil, errNoInput
	}
	s, err := snapshot.Load(opts.input)
	if err != nil {
		return snapshot.Snapshot{}, nil, err
	}
	log.WithFields(log.Fields{
		"input":       opts.input,
		"collections": len(s.Collections),
	}).Debug("snapshot loaded")
	if !withSelection {
		return s, nil, nil
	}
	selected, err := s.Select(opts.selected...)
	if err != nil {
		return snapshot.Snapshot{}, nil, err
	}
	return s, selected, nil
}

func newEngine() *setops.Engine {
	return setops.NewEngine(setops.WithLogger(log.WithFields(log.Fields{"component": "setops"})))
}
