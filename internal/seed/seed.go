// Package seed is Component F: it reads a prior solution workbook and
// produces the decision keys that should be pinned true by H14 (spec §6
// "Seed loader").
package seed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qax-os/excelize/v2"

	"github.com/gridshift/roster/internal/domain"
)

// Load reads path's first sheet and returns every decision key found in
// it. Sheet layout (spec §6): header row holds weekday names starting at
// column 4; column 1 is team, column 2 is employee name, column 3 is
// skills (ignored on read); each employee occupies two rows, row 2k
// carrying shift names per day and row 2k+1 the chosen skill per day. A
// populated (shift, skill) pair at day index d contributes key
// Week{ceil((d+1)/7)}_{days[d mod 7]}_{shift}_{team}_{name}_{skill}.
//
// Grounded on Excel_interface.py's read_from_excel, ported row-pair by
// row-pair rather than as a positional string-concatenation one-liner, so
// malformed rows fail with a located error instead of producing a
// plausible-looking but wrong key.
func Load(path string) ([]domain.Key, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: opening %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("seed: reading sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("seed: %s has no rows", path)
	}

	var keys []domain.Key
	for i := 1; i+1 < len(rows); i += 2 {
		shiftRow, skillRow := rows[i], rows[i+1]
		if len(shiftRow) < 2 {
			return nil, fmt.Errorf("seed: row %d is missing team/name columns", i+1)
		}
		team, name := cell(shiftRow, 0), cell(shiftRow, 1)
		if team == "" || name == "" {
			continue
		}
		for dayNumber := 0; ; dayNumber++ {
			col := 3 + dayNumber
			shift := cell(shiftRow, col)
			skill := cell(skillRow, col)
			if shift == "" && skill == "" {
				if col >= len(shiftRow) && col >= len(skillRow) {
					break
				}
				continue
			}
			if shift == "" || skill == "" {
				return nil, fmt.Errorf("seed: row %d day %d has a shift without a matching skill (or vice versa)", i+1, dayNumber)
			}
			week := "Week" + strconv.Itoa((dayNumber/7)+1)
			day := domain.WeekdayNames[dayNumber%7]
			keys = append(keys, domain.WorkKey(week, day, shift, team, name, skill))
		}
	}
	return keys, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
