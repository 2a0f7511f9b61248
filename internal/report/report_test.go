package report

import (
	"testing"
)

func TestColumnLetterSingleAndDoubleLetters(t *testing.T) {
	cases := map[int]string{
		0:  "A",
		1:  "B",
		25: "Z",
		26: "AA",
		27: "AB",
		51: "AZ",
	}
	for idx, want := range cases {
		if got := columnLetter(idx); got != want {
			t.Errorf("columnLetter(%d) = %q, want %q", idx, got, want)
		}
	}
}

func TestPaletteColorForPrefersShiftOverSkill(t *testing.T) {
	p := Palette{
		Shift: map[string]string{"M": "FFFF00"},
		Skill: map[string]string{"M": "00FF00"},
	}
	if got := p.colorFor("M"); got != "FFFF00" {
		t.Errorf("colorFor(%q) = %q, want shift color %q", "M", got, "FFFF00")
	}
}

func TestPaletteColorForFallsBackToSkill(t *testing.T) {
	p := Palette{Skill: map[string]string{"MO:M1": "0000FF"}}
	if got := p.colorFor("MO:M1"); got != "0000FF" {
		t.Errorf("colorFor(%q) = %q, want %q", "MO:M1", got, "0000FF")
	}
}

func TestPaletteColorForUnknownReturnsEmpty(t *testing.T) {
	p := Palette{}
	if got := p.colorFor("unknown"); got != "" {
		t.Errorf("colorFor(unknown) = %q, want empty string", got)
	}
}
