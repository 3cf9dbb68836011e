package datemath_test

import (
	"testing"
	"time"

	"notes-to-tasks/pkg/datemath"
)

func TestNewResolver(t *testing.T) {
	if _, err := datemath.NewResolver("Europe/Berlin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := datemath.NewResolver("Nowhere/Special"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestResolve(t *testing.T) {
	r, _ := datemath.NewResolver("UTC")
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

	at := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 15, 30, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		line     string
		want     time.Time
		wantKind datemath.Kind
		wantOK   bool
	}{
		{"tomorrow", "Call Dr. Smith urgently tomorrow #health", at(2024, 5, 2), datemath.KindRelative, true},
		{"today is now", "finish report today", now, datemath.KindRelative, true},
		{"tonight is now", "Call mom TONIGHT", now, datemath.KindRelative, true},
		{"next week", "plan trip next week", at(2024, 5, 8), datemath.KindRelative, true},
		{"in days", "renew passport in 3 days", at(2024, 5, 4), datemath.KindRelative, true},
		{"in weeks", "dentist in 2 weeks", at(2024, 5, 15), datemath.KindRelative, true},
		{"later weekday", "team sync Monday", at(2024, 5, 6), datemath.KindWeekday, true},
		{"same weekday is a week out", "standup wednesday", at(2024, 5, 8), datemath.KindWeekday, true},
		{"abbreviated weekday", "review tues", at(2024, 5, 7), datemath.KindWeekday, true},
		{"leftmost relative wins", "friday or tomorrow", at(2024, 5, 3), datemath.KindWeekday, true},
		{"explicit day first", "Pay rent 15/06", at(2024, 6, 15), datemath.KindExplicit, true},
		{"explicit past rolls to next year", "Submit form 3/4", at(2025, 4, 3), datemath.KindExplicit, true},
		{"explicit beats relative", "tomorrow or June 10th", at(2024, 6, 10), datemath.KindExplicit, true},
		{"day month with year", "renew on 5 Jan 2025", at(2025, 1, 5), datemath.KindExplicit, true},
		{"explicit today is now", "May 1 deadline", now, datemath.KindExplicit, true},
		{"past explicit year moves forward", "archive 1/1/2020", at(2025, 1, 1), datemath.KindExplicit, true},
		{"invalid calendar date ignored", "pay 31/02 tomorrow", at(2024, 5, 2), datemath.KindRelative, true},
		{"invalid calendar date alone", "pay 31/02", time.Time{}, "", false},
		{"quantity is not a date", "buy 3.5kg of rice", time.Time{}, "", false},
		{"spaced unit is not a date", "Buy 2.5 kg of rice", time.Time{}, "", false},
		{"percent is not a date", "raise budget 1.5 % soon", time.Time{}, "", false},
		{"version number is not a date", "upgrade to 1.2.3", time.Time{}, "", false},
		{"quantity skipped for later date", "Buy 2.5 kg rice 20.06", at(2024, 6, 20), datemath.KindExplicit, true},
		{"dotted date without unit", "Pay rent 20.06", at(2024, 6, 20), datemath.KindExplicit, true},
		{"weekday inside word", "buy sunscreen for mondays", time.Time{}, "", false},
		{"month prefix must be a month", "marching 5 miles", time.Time{}, "", false},
		{"no date", "Buy groceries", time.Time{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.line, now)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !got.At.Equal(tt.want) {
				t.Errorf("Resolve(%q) at = %v, want %v", tt.line, got.At, tt.want)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Resolve(%q) kind = %v, want %v", tt.line, got.Kind, tt.wantKind)
			}
		})
	}
}

func TestResolveMonthFirst(t *testing.T) {
	r, _ := datemath.NewResolver("UTC", datemath.WithMonthFirst())
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	got, ok := r.Resolve("invoice due 06/15", now)
	if !ok {
		t.Fatalf("expected a date")
	}
	want := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	if !got.At.Equal(want) {
		t.Errorf("at = %v, want %v", got.At, want)
	}
}

func TestResolveLeapDayWaitsForLeapYear(t *testing.T) {
	r, _ := datemath.NewResolver("UTC")
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	got, ok := r.Resolve("birthday 29/02", now)
	if !ok {
		t.Fatalf("expected a date")
	}
	want := time.Date(2028, 2, 29, 8, 0, 0, 0, time.UTC)
	if !got.At.Equal(want) {
		t.Errorf("at = %v, want %v", got.At, want)
	}
}

func TestResolveClockIsEvidenceOnly(t *testing.T) {
	r, _ := datemath.NewResolver("UTC")
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	got, ok := r.Resolve("Monday meeting at 3:45pm", now)
	if !ok {
		t.Fatalf("expected a date")
	}
	if !got.HasTime || got.Clock != "15:45" {
		t.Errorf("clock = %q (has=%v), want 15:45", got.Clock, got.HasTime)
	}
	if want := time.Date(2024, 5, 6, 15, 30, 0, 0, time.UTC); !got.At.Equal(want) {
		t.Errorf("at = %v, want %v", got.At, want)
	}

	if _, ok := r.Resolve("meet at 10:30", now); ok {
		t.Errorf("a bare time should not produce a due date")
	}
}

func TestResolveNeverBeforeNow(t *testing.T) {
	r, _ := datemath.NewResolver("Asia/Ho_Chi_Minh")
	lines := []string{
		"today", "sunday", "monday", "1/1", "31/12", "Jan 1", "december 31st",
		"in 0 days", "12/05/1999", "next week", "sat",
	}
	for day := 0; day < 14; day++ {
		now := time.Date(2024, 12, 25, 23, 10, 0, 0, time.UTC).AddDate(0, 0, day)
		for _, line := range lines {
			got, ok := r.Resolve(line, now)
			if !ok {
				t.Fatalf("Resolve(%q) found nothing", line)
			}
			if got.At.Before(now) {
				t.Errorf("Resolve(%q, %v) = %v is before now", line, now, got.At)
			}
		}
	}
}
