package seed

import (
	"path/filepath"
	"testing"

	"github.com/qax-os/excelize/v2"

	"github.com/gridshift/roster/internal/domain"
)

func writeFixtureWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "Team")
	f.SetCellValue(sheet, "B1", "Name")
	f.SetCellValue(sheet, "C1", "Skills")
	f.SetCellValue(sheet, "D1", "Mo")
	f.SetCellValue(sheet, "E1", "Tu")

	f.SetCellValue(sheet, "A2", "TeamA")
	f.SetCellValue(sheet, "B2", "Alice")
	f.SetCellValue(sheet, "C2", "MO:M1")
	f.SetCellValue(sheet, "D2", "M")
	f.SetCellValue(sheet, "E2", "N")

	f.SetCellValue(sheet, "D3", "MO:M1")
	f.SetCellValue(sheet, "E3", "MO:M1")

	path := filepath.Join(t.TempDir(), "seed.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

func TestLoadParsesShiftSkillRowPairs(t *testing.T) {
	path := writeFixtureWorkbook(t)
	keys, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []domain.Key{
		domain.WorkKey("Week1", "Mo", "M", "TeamA", "Alice", "MO:M1"),
		domain.WorkKey("Week1", "Tu", "N", "TeamA", "Alice", "MO:M1"),
	}
	if len(keys) != len(want) {
		t.Fatalf("Load returned %d keys, want %d: %v", len(keys), len(want), keys)
	}
	for i, w := range want {
		if keys[i] != w {
			t.Errorf("keys[%d] = %+v, want %+v", i, keys[i], w)
		}
	}
}

func TestLoadRejectsMismatchedShiftSkillPair(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "Team")
	f.SetCellValue(sheet, "A2", "TeamA")
	f.SetCellValue(sheet, "B2", "Alice")
	f.SetCellValue(sheet, "D2", "M")
	// Row 3 (the skill row) exists (forced by the E3 cell below) but leaves
	// D3 empty: a shift without a matching skill.
	f.SetCellValue(sheet, "E3", "placeholder")
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected Load to reject a shift cell with no matching skill cell")
	}
}

func TestCellOutOfRangeReturnsEmpty(t *testing.T) {
	row := []string{"a", "b"}
	if got := cell(row, 5); got != "" {
		t.Errorf("cell out of range = %q, want empty string", got)
	}
	if got := cell(row, -1); got != "" {
		t.Errorf("cell negative index = %q, want empty string", got)
	}
}
