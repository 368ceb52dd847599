// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// table collects rows and prints them with columns padded to display width,
// so full-width labels line up.
type table struct {
	header []string
	rows   [][]string
	right  map[int]bool // right-aligned columns
}

func newTable(header ...string) *table {
	return &table{header: header, right: map[int]bool{}}
}

// alignRight marks columns to be right-aligned.
func (t *table) alignRight(cols ...int) *table {
	for _, c := range cols {
		t.right[c] = true
	}
	return t
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) write(w io.Writer) {
	widths := make([]int, len(t.header))
	measure := func(row []string) {
		for i, c := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(c))
			}
		}
	}
	measure(t.header)
	for _, r := range t.rows {
		measure(r)
	}

	line := func(row []string) {
		cells := make([]string, len(row))
		for i, c := range row {
			if t.right[i] {
				cells[i] = padLeft(c, widths[i])
			} else {
				cells[i] = padRight(c, widths[i])
			}
		}
		fmt.Fprintln(w, strings.TrimRight("  "+strings.Join(cells, "  "), " ")) //nolint:errcheck
	}

	line(t.header)
	total := 0
	for _, wd := range widths {
		total += wd + 2
	}
	fmt.Fprintln(w, "  "+strings.Repeat("-", max(total-2, 0))) //nolint:errcheck
	for _, r := range t.rows {
		line(r)
	}
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// padLeft is padRight for right-aligned cells.
func padLeft(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return strings.Repeat(" ", width-sw) + s
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, strings.Repeat("=", 60)) //nolint:errcheck
	fmt.Fprintln(w, " "+title)               //nolint:errcheck
	fmt.Fprintln(w, strings.Repeat("=", 60)) //nolint:errcheck
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
