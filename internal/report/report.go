// Package report is Component H: it renders a projected Schedule as a
// spreadsheet (spec §6 "Reporter") and as a console cost breakdown.
package report

import (
	"fmt"

	"github.com/qax-os/excelize/v2"

	"github.com/gridshift/roster/internal/domain"
	"github.com/gridshift/roster/internal/result"
)

// Palette maps shift names and skill names to a fill color (spec §6: "cell
// fills are assigned from a fixed palette keyed by shift name and skill
// name"). Team and WeekendFill round out the original's team-banding
// and weekend-shading behavior. Grounded on Excel_interface.py's write_to_
// excel color table, generalized from hardcoded literals into a caller-
// supplied map so it is not tied to one deployment's skill names.
type Palette struct {
	Shift       map[string]string
	Skill       map[string]string
	Team        map[string]string
	WeekendFill string
}

func (p Palette) colorFor(shiftOrSkill string) string {
	if c, ok := p.Shift[shiftOrSkill]; ok {
		return c
	}
	if c, ok := p.Skill[shiftOrSkill]; ok {
		return c
	}
	return ""
}

// WriteWorkbook writes schedule's visible-horizon assignments to path in the
// layout spec §6 describes: column 1 team, column 2 name, column 3 skills,
// one column per day grouped into week blocks of 7, two rows per employee
// (shift letter above, skill below), shift-manager label cells (team, name,
// skills) bold, weekend columns shaded, thin borders on every cell that gets
// a palette fill (cells without a fill get no border), plus a Summary sheet carrying
// the per-employee soft-cost breakdown supplemented beyond the original's
// single-sheet layout.
func WriteWorkbook(path string, horizon *domain.PlanningHorizon, teams []*domain.Team, schedule *result.Schedule, breakdown []RuleTotals, palette Palette) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Roster"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", "Team")
	f.SetCellValue(sheet, "B1", "Name")
	f.SetCellValue(sheet, "C1", "Skills")

	days := horizon.VisibleDays()
	for i, wd := range days {
		col := columnLetter(3 + i)
		if err := f.SetCellValue(sheet, col+"1", wd.Day.Name); err != nil {
			return fmt.Errorf("report: header cell: %w", err)
		}
		if wd.Day.IsWeekend() {
			if err := shadeColumn(f, sheet, col, 1, len(allEmployees(teams))*2+1, palette.WeekendFill); err != nil {
				return err
			}
		}
	}

	row := 2
	for _, team := range teams {
		teamColor := palette.Team[team.Name]
		for _, e := range team.Employees {
			shiftRow, skillRow := row, row+1
			if err := writeRowLabel(f, sheet, shiftRow, team.Name, e.Name, skillsString(e.Skills), e.IsShiftManager, teamColor); err != nil {
				return err
			}

			for i, wd := range days {
				col := columnLetter(3 + i)
				for _, k := range assignedKeys(schedule, wd, team.Name, e.Name) {
					shiftCell := col + itoa(shiftRow)
					skillCell := col + itoa(skillRow)
					f.SetCellValue(sheet, shiftCell, k.Shift)
					f.SetCellValue(sheet, skillCell, k.Skill)
					if err := applyFill(f, sheet, shiftCell, palette.colorFor(k.Shift)); err != nil {
						return err
					}
					if err := applyFill(f, sheet, skillCell, palette.colorFor(k.Skill)); err != nil {
						return err
					}
				}
			}
			row += 2
		}
	}

	if err := writeSummary(f, breakdown); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("report: saving %s: %w", path, err)
	}
	return nil
}

func writeRowLabel(f *excelize.File, sheet string, shiftRow int, team, name, skills string, bold bool, fillColor string) error {
	cells := map[string]string{
		"A" + itoa(shiftRow): team,
		"B" + itoa(shiftRow): name,
		"C" + itoa(shiftRow): skills,
	}
	for cell, val := range cells {
		f.SetCellValue(sheet, cell, val)
		if fillColor != "" {
			if err := applyFill(f, sheet, cell, fillColor); err != nil {
				return err
			}
		}
		if bold {
			styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
			if err != nil {
				return fmt.Errorf("report: bold style: %w", err)
			}
			if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
				return fmt.Errorf("report: applying bold style: %w", err)
			}
		}
	}
	return nil
}

func applyFill(f *excelize.File, sheet, cell, color string) error {
	if color == "" {
		return nil
	}
	styleID, err := f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		Border: thinBorder,
	})
	if err != nil {
		return fmt.Errorf("report: fill style for cell %s: %w", cell, err)
	}
	return f.SetCellStyle(sheet, cell, cell, styleID)
}

func shadeColumn(f *excelize.File, sheet, col string, fromRow, toRow int, color string) error {
	if color == "" {
		return nil
	}
	for r := fromRow; r <= toRow; r++ {
		if err := applyFill(f, sheet, col+itoa(r), color); err != nil {
			return err
		}
	}
	return nil
}

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

// assignedKeys returns the (normally single) key matching team/employee on
// wd that schedule has assigned true — a work key or an absence key, H2
// guarantees at most one.
func assignedKeys(schedule *result.Schedule, wd domain.WeekDay, team, employee string) []domain.Key {
	var out []domain.Key
	for k, v := range schedule.Keys {
		if !v || k.Week != wd.Week.Name || k.Day != wd.Day.Name || k.Team != team || k.Employee != employee {
			continue
		}
		out = append(out, k)
	}
	return out
}

func allEmployees(teams []*domain.Team) []domain.Employee {
	var out []domain.Employee
	for _, t := range teams {
		out = append(out, t.Employees...)
	}
	return out
}

func skillsString(skills []domain.Skill) string {
	s := ""
	for i, sk := range skills {
		if i > 0 {
			s += ", "
		}
		s += sk.Label()
	}
	return s
}

func columnLetter(zeroBasedIndex int) string {
	n := zeroBasedIndex + 1
	var s string
	for n > 0 {
		n--
		s = string(rune('A'+n%26)) + s
		n /= 26
	}
	return s
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}
