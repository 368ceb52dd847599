// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/orgstat/dataset"
	"github.com/spf13/cobra"
)

var version = "dev"

// Output formats shared by every subcommand.
const (
	formatTable = "table"
	formatJSON  = "json"
)

// globalFlags are the persistent flags of the root command.
type globalFlags struct {
	catalog string
	vars    []string
	format  string
	debug   bool

	log *slog.Logger // per invocation, writes to the command's stderr
}

func newRootCommand() *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:   "orgstat",
		Short: "Descriptive statistics and PCA over organization metrics",
		Long: `orgstat summarizes, correlates, ranks and projects the numeric variables
of an organization catalog.

The built-in catalog is used unless --catalog names a YAML file with the same
layout (variables + records).`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if g.debug {
				level = slog.LevelDebug
			}
			g.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			if g.format != formatTable && g.format != formatJSON {
				return fmt.Errorf("unsupported format %q: must be table or json", g.format)
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.catalog, "catalog", "", "Path to a YAML catalog (default: built-in)")
	pf.StringSliceVar(&g.vars, "vars", nil, "Comma-separated variable keys (default: all)")
	pf.StringVarP(&g.format, "format", "f", formatTable, "Output format: table or json")
	pf.BoolVar(&g.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newSummaryCommand(g))
	cmd.AddCommand(newCorrCommand(g))
	cmd.AddCommand(newPCACommand(g))
	cmd.AddCommand(newRankCommand(g))
	cmd.AddCommand(newGroupsCommand(g))
	cmd.AddCommand(newVendorsCommand(g))

	return cmd
}

func execute() error {
	return newRootCommand().Execute()
}

// catalogOnly decodes the built-in catalog or the one named by --catalog.
func (g *globalFlags) catalogOnly() (*dataset.Catalog, error) {
	if g.catalog == "" {
		return dataset.Default()
	}
	data, err := os.ReadFile(g.catalog)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return dataset.Parse(data)
}

// load resolves the catalog and the variables selected by --vars.
func (g *globalFlags) load() (*dataset.Catalog, []dataset.Variable, error) {
	cat, err := g.catalogOnly()
	if err != nil {
		return nil, nil, err
	}

	keys := make([]string, 0, len(g.vars))
	for _, k := range g.vars {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	vars, err := cat.Lookup(keys...)
	if err != nil {
		return nil, nil, err
	}
	g.logger().Debug("catalog loaded", "source", g.catalogSource(), "records", len(cat.Records), "variables", len(vars))

	return cat, vars, nil
}

func (g *globalFlags) catalogSource() string {
	if g.catalog == "" {
		return "built-in"
	}
	return g.catalog
}

// logger returns the invocation logger, discarding output before
// PersistentPreRunE has run.
func (g *globalFlags) logger() *slog.Logger {
	if g.log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return g.log
}
