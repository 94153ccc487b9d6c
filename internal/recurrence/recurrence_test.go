package recurrence

import (
	"testing"
	"time"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(t time.Time) *time.Time { return &t }

func TestEligible(t *testing.T) {
	now := at("2026-03-15T12:00:00Z")

	tests := []struct {
		name        string
		completed   bool
		completedAt *time.Time
		repeat      string
		want        bool
	}{
		{"never completed", false, nil, None, true},
		{"never completed daily", false, nil, Daily, true},
		{"daily 23h ago", true, ptr(now.Add(-23 * time.Hour)), Daily, false},
		{"daily 24h ago", true, ptr(now.Add(-24 * time.Hour)), Daily, true},
		{"daily 3 days ago", true, ptr(now.AddDate(0, 0, -3)), Daily, true},
		{"weekly 6 days 23h ago", true, ptr(now.Add(-(7*24 - 1) * time.Hour)), Weekly, false},
		{"weekly 7 days ago", true, ptr(now.AddDate(0, 0, -7)), Weekly, true},
		{"monthly one day short", true, ptr(at("2026-02-16T12:00:00Z")), Monthly, false},
		{"monthly calendar month", true, ptr(at("2026-02-15T12:00:00Z")), Monthly, true},
		{"monthly one second short", true, ptr(at("2026-02-15T12:00:01Z")), Monthly, false},
		{"none completed long ago", true, ptr(now.AddDate(-1, 0, 0)), None, false},
		{"unknown value", true, ptr(now.AddDate(-1, 0, 0)), "Yearly", false},
		{"case insensitive", true, ptr(now.Add(-25 * time.Hour)), "daily", true},
		{"completed without time daily", true, nil, Daily, true},
		{"completed without time none", true, nil, None, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Eligible(tt.completed, tt.completedAt, tt.repeat, now)
			if got != tt.want {
				t.Errorf("Eligible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextEligibleMonthUsesCalendar(t *testing.T) {
	// 31 days in January, 28 in February 2026
	next, ok := NextEligible(Monthly, at("2026-02-01T08:00:00Z"))
	if !ok {
		t.Fatal("monthly should recur")
	}
	if want := at("2026-03-01T08:00:00Z"); !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
}

func TestKnown(t *testing.T) {
	for _, v := range []string{"None", "daily", "WEEKLY", "Monthly"} {
		if !Known(v) {
			t.Errorf("Known(%q) = false", v)
		}
	}
	if Known("Hourly") {
		t.Error("Known(Hourly) = true")
	}
}
