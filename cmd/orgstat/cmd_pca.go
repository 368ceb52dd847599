// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/orgstat/pca"
	"github.com/spf13/cobra"
)

type pcaFlags struct {
	components int
	iterations int
	seed       int64
	tolerance  float64
}

type pcaComponent struct {
	Eigenvalue float64            `json:"eigenvalue"`
	Explained  float64            `json:"explained_percent"`
	Iterations int                `json:"iterations"`
	Loadings   map[string]float64 `json:"loadings"`
}

type pcaPoint struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Scores []float64 `json:"scores"`
}

type pcaReport struct {
	Variables  []string       `json:"variables"`
	Records    int            `json:"records"`
	Components []pcaComponent `json:"components"`
	Points     []pcaPoint     `json:"points"`
}

func newPCACommand(g *globalFlags) *cobra.Command {
	f := &pcaFlags{}
	cmd := &cobra.Command{
		Use:   "pca",
		Short: "Principal component analysis of the selected variables",
		Long: `Standardizes the records that have every selected variable, builds the
sample covariance matrix and extracts the leading components by power
iteration with deflation. Records with a missing variable are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, vars, err := g.load()
			if err != nil {
				return err
			}
			opts, err := f.options()
			if err != nil {
				return err
			}
			res, err := pca.Analyze(cat.Records, vars, opts...)
			if err != nil {
				return err
			}
			g.logger().Debug("pca done",
				"records", len(res.Points),
				"skipped", len(cat.Records)-len(res.Points),
				"components", len(res.Pairs))

			report := buildPCAReport(res)
			if g.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			printPCATable(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().IntVarP(&f.components, "components", "k", pca.DefaultComponents, "Number of components to extract")
	cmd.Flags().IntVar(&f.iterations, "iterations", pca.DefaultIterations, "Power-iteration budget per component")
	cmd.Flags().Int64Var(&f.seed, "seed", pca.DefaultSeed, "Start-vector seed (negative: random)")
	cmd.Flags().Float64Var(&f.tolerance, "tolerance", pca.DefaultTolerance, "Early-stop threshold on iterate change (0 disables)")

	return cmd
}

// options validates the flags before they reach the panicking option setters.
func (f *pcaFlags) options() ([]pca.Option, error) {
	if f.iterations < 1 {
		return nil, fmt.Errorf("--iterations must be at least 1, got %d", f.iterations)
	}
	if f.tolerance < 0 || math.IsNaN(f.tolerance) || math.IsInf(f.tolerance, 0) {
		return nil, fmt.Errorf("--tolerance must be finite and non-negative, got %g", f.tolerance)
	}
	if f.components < 1 {
		return nil, fmt.Errorf("--components must be at least 1, got %d", f.components)
	}

	return []pca.Option{
		pca.WithComponents(f.components),
		pca.WithIterations(f.iterations),
		pca.WithSeed(f.seed),
		pca.WithTolerance(f.tolerance),
	}, nil
}

func buildPCAReport(res *pca.Result) *pcaReport {
	r := &pcaReport{Records: len(res.Points)}
	for _, v := range res.Variables {
		r.Variables = append(r.Variables, v.Key)
	}
	for c, p := range res.Pairs {
		comp := pcaComponent{
			Eigenvalue: p.Value,
			Explained:  res.Explained[c],
			Iterations: p.Iterations,
			Loadings:   make(map[string]float64, len(res.Variables)),
		}
		for _, v := range res.Variables {
			comp.Loadings[v.Key], _ = res.Loading(c, v.Key)
		}
		r.Components = append(r.Components, comp)
	}
	for _, pt := range res.Points {
		r.Points = append(r.Points, pcaPoint{ID: pt.Record.ID, Name: pt.Record.Name, Scores: pt.Scores})
	}

	return r
}

func printPCATable(w io.Writer, res *pca.Result) {
	heading(w, "PCA")
	fmt.Fprintf(w, "  records: %d\n\n", len(res.Points)) //nolint:errcheck

	header := []string{"Component", "Eigenvalue", "Explained"}
	et := newTable(header...).alignRight(1, 2)
	for c, p := range res.Pairs {
		et.add(fmt.Sprintf("PC%d", c+1), fmt.Sprintf("%.4f", p.Value), fmt.Sprintf("%.1f%%", res.Explained[c]))
	}
	et.write(w)
	fmt.Fprintln(w) //nolint:errcheck

	comps := make([]string, 0, len(res.Pairs)+1)
	comps = append(comps, "Variable")
	cols := make([]int, 0, len(res.Pairs))
	for c := range res.Pairs {
		comps = append(comps, fmt.Sprintf("PC%d", c+1))
		cols = append(cols, c+1)
	}
	lt := newTable(comps...).alignRight(cols...)
	for _, v := range res.Variables {
		row := []string{v.Name}
		for c := range res.Pairs {
			l, _ := res.Loading(c, v.Key)
			row = append(row, fmt.Sprintf("%+.3f", l))
		}
		lt.add(row...)
	}
	lt.write(w)
	fmt.Fprintln(w) //nolint:errcheck

	comps[0] = "Record"
	st := newTable(comps...).alignRight(cols...)
	for _, pt := range res.Points {
		row := []string{pt.Record.Label()}
		for _, s := range pt.Scores {
			row = append(row, fmt.Sprintf("%+.3f", s))
		}
		st.add(row...)
	}
	st.write(w)
}
