// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/orgstat/dataset"
	"github.com/katalvlaran/orgstat/stats"
	"github.com/spf13/cobra"
)

type rankRow struct {
	Position int     `json:"position"`
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
}

func newRankCommand(g *globalFlags) *cobra.Command {
	var order string
	cmd := &cobra.Command{
		Use:   "rank <variable>",
		Short: "Rank records by one variable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := parseOrder(order)
			if err != nil {
				return err
			}
			cat, err := g.catalogOnly()
			if err != nil {
				return err
			}
			v, ok := cat.Variable(args[0])
			if !ok {
				return fmt.Errorf("%w: %q", dataset.ErrUnknownVariable, args[0])
			}
			ranked := stats.Rank(cat.Records, v.Key, o)

			if g.format == formatJSON {
				rows := make([]rankRow, len(ranked))
				for i, r := range ranked {
					rows[i] = rankRow{Position: r.Position, ID: r.Record.ID, Name: r.Record.Name, Value: r.Value}
				}
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			printRankTable(cmd.OutOrStdout(), v, ranked)
			return nil
		},
	}
	cmd.Flags().StringVar(&order, "order", "desc", "Ranking order: desc or asc")

	return cmd
}

func parseOrder(s string) (stats.Order, error) {
	switch s {
	case "desc", "":
		return stats.Descending, nil
	case "asc":
		return stats.Ascending, nil
	default:
		return 0, fmt.Errorf("unsupported order %q: must be desc or asc", s)
	}
}

func printRankTable(w io.Writer, v dataset.Variable, ranked []stats.Ranked) {
	heading(w, "RANKING: "+v.Name)
	t := newTable("#", "Record", v.Name).alignRight(0, 2)
	for _, r := range ranked {
		t.add(fmt.Sprint(r.Position), r.Record.Label(), v.Format(r.Value))
	}
	t.write(w)
}
