package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
)

// ConsoleBreakdown is one soft rule's name and cost column, mirroring the
// original's ConsoleOutput record (column_name, data, cost) but resolved
// to plain int64s instead of live cp_model.IntVar handles.
type ConsoleBreakdown struct {
	ColumnName  string
	PerEmployee map[string]int64
	Cost        int64
}

// WriteConsole renders one row per employee, one column per soft rule, to
// w. Grounded on model/ConsoleOutput.py's column_name/data/cost record,
// generalized from a single struct instance into the tabular dump the
// driver prints at the end of a run.
func WriteConsole(w io.Writer, breakdown []ConsoleBreakdown) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	employees := make(map[string]bool)
	for _, b := range breakdown {
		for k := range b.PerEmployee {
			employees[k] = true
		}
	}
	ordered := make([]string, 0, len(employees))
	for k := range employees {
		ordered = append(ordered, k)
	}
	sort.Strings(ordered)

	fmt.Fprint(tw, "Employee")
	for _, b := range breakdown {
		fmt.Fprintf(tw, "\t%s (c=%d)", b.ColumnName, b.Cost)
	}
	fmt.Fprintln(tw)

	for _, emp := range ordered {
		fmt.Fprint(tw, emp)
		for _, b := range breakdown {
			fmt.Fprintf(tw, "\t%d", b.PerEmployee[emp])
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
