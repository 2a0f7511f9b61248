package domain

import "fmt"

func errTemplateLength(got int) error {
	return fmt.Errorf("domain: week template needs exactly %d days, got %d", len(WeekdayNames), got)
}

func errTemplateOrder(i int, want, got string) error {
	return fmt.Errorf("domain: week template day %d must be %q, got %q", i, want, got)
}
