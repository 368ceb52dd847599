// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/orgstat/stats"
	"github.com/spf13/cobra"
)

func newVendorsCommand(g *globalFlags) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "Rank system vendors by how many records name them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if top < 0 {
				return fmt.Errorf("--top must be non-negative, got %d", top)
			}
			cat, err := g.catalogOnly()
			if err != nil {
				return err
			}
			counts := stats.VendorFrequency(cat.Records)
			g.logger().Debug("vendors counted", "vendors", len(counts))
			if top > 0 && top < len(counts) {
				counts = counts[:top]
			}

			if g.format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), counts)
			}
			printVendorsTable(cmd.OutOrStdout(), counts)
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 10, "Show only the N most frequent vendors (0: all)")

	return cmd
}

func printVendorsTable(w io.Writer, counts []stats.VendorCount) {
	heading(w, "VENDORS")
	t := newTable("Vendor", "Records", "Organizations").alignRight(1)
	for _, c := range counts {
		t.add(c.Vendor, fmt.Sprint(c.Count), strings.Join(c.Records, ", "))
	}
	t.write(w)
}
