package cli

import (
	"testing"
	"time"
)

func TestParseMinDate(t *testing.T) {
	minDate, err := parseMinDate("2023-07-28")
	if err != nil {
		t.Fatalf("parseMinDate failed: %v", err)
	}
	want := time.Date(2023, 7, 28, 0, 0, 0, 0, time.UTC)
	if !minDate.Equal(want) {
		t.Errorf("Expected %v, got %v", want, minDate)
	}

	minDate, err = parseMinDate("  ")
	if err != nil {
		t.Fatalf("parseMinDate on blank failed: %v", err)
	}
	if !minDate.IsZero() {
		t.Errorf("Expected zero time for blank input, got %v", minDate)
	}

	for _, bad := range []string{"28-07-2023", "2023/07/28", "yesterday"} {
		if _, err := parseMinDate(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}
