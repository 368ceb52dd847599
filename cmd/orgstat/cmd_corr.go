// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/orgstat/dataset"
	"github.com/katalvlaran/orgstat/stats"
	"github.com/spf13/cobra"
)

// topPairs is how many of the strongest pairs the table report lists.
const topPairs = 5

type corrReport struct {
	Variables []string     `json:"variables"`
	Matrix    [][]float64  `json:"matrix"`
	Pairs     []stats.Pair `json:"pairs"`
}

func newCorrCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "corr",
		Short: "Pearson correlation matrix of the selected variables",
		Long: `Computes Pearson's r for every variable pair, using only the records where
both variables are present.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, vars, err := g.load()
			if err != nil {
				return err
			}
			cm, err := stats.NewCorrelationMatrix(cat.Records, vars)
			if err != nil {
				return err
			}
			report, err := buildCorrReport(cm)
			if err != nil {
				return err
			}

			if g.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			printCorrTable(cmd.OutOrStdout(), vars, report)
			return nil
		},
	}
}

func buildCorrReport(cm *stats.CorrelationMatrix) (*corrReport, error) {
	n := cm.Size()
	m := make([][]float64, n)
	for i := 0; i < n; i++ {
		m[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			v, err := cm.At(i, j)
			if err != nil {
				return nil, err
			}
			m[i][j] = v
		}
	}

	return &corrReport{Variables: cm.Keys(), Matrix: m, Pairs: cm.Pairs()}, nil
}

func printCorrTable(w io.Writer, vars []dataset.Variable, r *corrReport) {
	heading(w, "CORRELATION")
	header := make([]string, 0, len(vars)+1)
	header = append(header, "")
	cols := make([]int, 0, len(vars))
	for i, v := range vars {
		header = append(header, v.Name)
		cols = append(cols, i+1)
	}
	t := newTable(header...).alignRight(cols...)
	for i, v := range vars {
		row := make([]string, 0, len(vars)+1)
		row = append(row, v.Name)
		for _, x := range r.Matrix[i] {
			row = append(row, fmt.Sprintf("%+.3f", x))
		}
		t.add(row...)
	}
	t.write(w)

	if len(r.Pairs) == 0 {
		return
	}
	names := make(map[string]string, len(vars))
	for _, v := range vars {
		names[v.Key] = v.Name
	}
	fmt.Fprintln(w)                     //nolint:errcheck
	fmt.Fprintln(w, " STRONGEST PAIRS") //nolint:errcheck
	pt := newTable("Pair", "r").alignRight(1)
	for i, p := range r.Pairs {
		if i == topPairs {
			break
		}
		pt.add(names[p.A]+" × "+names[p.B], fmt.Sprintf("%+.3f", p.R))
	}
	pt.write(w)
}
