package report

import (
	"fmt"
	"sort"

	"github.com/qax-os/excelize/v2"
)

// RuleTotals is one soft rule's resolved per-employee cost (the `c*m_e`
// value read back from the solver response), keyed by "team/employee".
// Built by the driver from objective.Result before calling WriteWorkbook;
// kept here rather than importing internal/objective, so report never
// needs CP-SAT response types.
type RuleTotals struct {
	Rule        string
	PerEmployee map[string]int64
}

// writeSummary adds a "Summary" sheet with one row per employee and one
// column per soft rule, supplementing the original's single-sheet layout
// (Excel_interface.py never reported costs at all, only assignments).
func writeSummary(f *excelize.File, breakdown []RuleTotals) error {
	if len(breakdown) == 0 {
		return nil
	}
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("report: creating summary sheet: %w", err)
	}

	employees := make(map[string]bool)
	for _, rb := range breakdown {
		for k := range rb.PerEmployee {
			employees[k] = true
		}
	}
	ordered := make([]string, 0, len(employees))
	for k := range employees {
		ordered = append(ordered, k)
	}
	sort.Strings(ordered)

	f.SetCellValue(sheet, "A1", "Employee")
	for j, rb := range breakdown {
		col := columnLetter(1 + j)
		f.SetCellValue(sheet, col+"1", rb.Rule)
	}
	for i, emp := range ordered {
		row := i + 2
		f.SetCellValue(sheet, "A"+itoa(row), emp)
		for j, rb := range breakdown {
			col := columnLetter(1 + j)
			f.SetCellValue(sheet, col+itoa(row), rb.PerEmployee[emp])
		}
	}
	return nil
}
