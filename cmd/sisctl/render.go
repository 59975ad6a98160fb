package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// renderTable prints rows in aligned columns.
func renderTable(out io.Writer, header []string, rows [][]string) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}
