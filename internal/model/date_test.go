package model

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2026-01-05",
			want:  Date{Year: 2026, Month: time.January, Day: 5},
		},
		{
			name:  "end of year",
			input: "2025-12-31",
			want:  Date{Year: 2025, Month: time.December, Day: 31},
		},
		{
			name:    "wrong layout",
			input:   "05/01/2026",
			wantErr: true,
		},
		{
			name:    "month out of range",
			input:   "2026-13-01",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateRoundTrip(t *testing.T) {
	d := NewDate(2026, time.August, 31)
	parsed, err := ParseDate(d.String())
	if err != nil {
		t.Fatalf("ParseDate(%q) failed: %v", d.String(), err)
	}
	if parsed != d {
		t.Errorf("round trip changed date: got %v, want %v", parsed, d)
	}
}

func TestDateOrdering(t *testing.T) {
	earlier := NewDate(2026, time.January, 31)
	later := NewDate(2026, time.February, 1)

	if !earlier.Before(later) {
		t.Error("expected January 31 before February 1")
	}
	if later.Before(earlier) {
		t.Error("expected February 1 not before January 31")
	}
	if !later.After(earlier) {
		t.Error("expected February 1 after January 31")
	}
	if earlier.Before(earlier) {
		t.Error("a date must not be before itself")
	}
}

func TestDateAddDays(t *testing.T) {
	tests := []struct {
		name string
		d    Date
		n    int
		want Date
	}{
		{
			name: "within month",
			d:    NewDate(2026, time.March, 10),
			n:    5,
			want: NewDate(2026, time.March, 15),
		},
		{
			name: "across month boundary",
			d:    NewDate(2026, time.January, 31),
			n:    1,
			want: NewDate(2026, time.February, 1),
		},
		{
			name: "back across year boundary",
			d:    NewDate(2026, time.January, 1),
			n:    -1,
			want: NewDate(2025, time.December, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.AddDays(tt.n); got != tt.want {
				t.Errorf("AddDays(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestMonthDays(t *testing.T) {
	tests := []struct {
		name  string
		month Month
		want  int
	}{
		{"january", Month{Year: 2026, Month: time.January}, 31},
		{"april", Month{Year: 2026, Month: time.April}, 30},
		{"february non-leap", Month{Year: 2026, Month: time.February}, 28},
		{"february leap", Month{Year: 2024, Month: time.February}, 29},
		{"december", Month{Year: 2026, Month: time.December}, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.month.Days(); got != tt.want {
				t.Errorf("%v.Days() = %d, want %d", tt.month, got, tt.want)
			}
		})
	}
}

func TestMonthBounds(t *testing.T) {
	m := Month{Year: 2026, Month: time.February}

	if got := m.First(); got != NewDate(2026, time.February, 1) {
		t.Errorf("First() = %v", got)
	}
	if got := m.Last(); got != NewDate(2026, time.February, 28) {
		t.Errorf("Last() = %v", got)
	}
	if got := m.String(); got != "2026-02" {
		t.Errorf("String() = %q, want %q", got, "2026-02")
	}
}

func TestMonthOf(t *testing.T) {
	d := NewDate(2026, time.July, 15)
	if got := MonthOf(d); got != (Month{Year: 2026, Month: time.July}) {
		t.Errorf("MonthOf(%v) = %v", d, got)
	}
}
