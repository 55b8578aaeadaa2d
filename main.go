package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	log "github.com/sirupsen/logrus"
)

const (
	envLogLevel = "GROCERY_SETS_LOG_LEVEL"
	envInput    = "GROCERY_SETS_INPUT"
)

type options struct {
	input    string
	format   string
	logLevel string
	selected []string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "grocery-sets",
		Short:         "Compare grocery lists with set operations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(opts.logLevel)
		},
	}
	root.PersistentFlags().StringVarP(&opts.input, "input", "i", os.Getenv(envInput), "snapshot file (YAML or JSON)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", formatTable, "output format: table, json or yaml")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", envOr(envLogLevel, "info"), "log level")

	compute := newComputeCmd(opts)
	all := newAllCmd(opts)
	for _, cmd := range []*cobra.Command{compute, all} {
		cmd.Flags().StringArrayVarP(&opts.selected, "select", "s", nil, "collection id or name, repeatable, order matters")
	}
	root.AddCommand(compute, all, newAnalyticsCmd(opts))
	return root
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
