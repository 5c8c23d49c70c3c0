package datekey

import (
	"testing"
	"time"
)

func TestString(t *testing.T) {
	d := New(2024, time.January, 5)
	if got := d.String(); got != "2024-01-05" {
		t.Errorf("String() = %q, want %q", got, "2024-01-05")
	}
}

func TestString_Padding(t *testing.T) {
	d := New(987, time.September, 3)
	if got := d.String(); got != "0987-09-03" {
		t.Errorf("String() = %q, want %q", got, "0987-09-03")
	}
}

func TestFromText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{
			name:  "exact filename",
			input: "2024-01-05.md",
			want:  "2024-01-05",
			ok:    true,
		},
		{
			name:  "prefixed and suffixed",
			input: "notes-2024-01-05-backup.md",
			want:  "2024-01-05",
			ok:    true,
		},
		{
			name:  "first match wins",
			input: "2023-12-31-to-2024-01-01.md",
			want:  "2023-12-31",
			ok:    true,
		},
		{
			name:  "no date",
			input: "scratchpad.md",
			ok:    false,
		},
		{
			name:  "month out of range",
			input: "2024-13-45.md",
			ok:    false,
		},
		{
			name:  "day out of range",
			input: "2024-02-30.md",
			ok:    false,
		},
		{
			name:  "empty",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := FromText(tt.input)
			if ok != tt.ok {
				t.Fatalf("FromText(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && d.String() != tt.want {
				t.Errorf("FromText(%q) = %q, want %q", tt.input, d.String(), tt.want)
			}
		})
	}
}

func TestFromTime(t *testing.T) {
	ts := time.Date(2024, time.March, 9, 23, 59, 58, 0, time.UTC)
	d := FromTime(ts)
	if d.String() != "2024-03-09" {
		t.Errorf("FromTime() = %q, want %q", d.String(), "2024-03-09")
	}
}

func TestToday(t *testing.T) {
	d := Today()
	if d.IsZero() {
		t.Error("Today() returned the zero date")
	}
}

func TestEquality(t *testing.T) {
	a := New(2024, time.January, 5)
	b, ok := FromText("2024-01-05.md")
	if !ok {
		t.Fatal("FromText failed")
	}
	if a != b {
		t.Errorf("dates not equal: %v vs %v", a, b)
	}
}

func TestBefore(t *testing.T) {
	tests := []struct {
		name string
		a, b Date
		want bool
	}{
		{"earlier year", New(2023, time.December, 31), New(2024, time.January, 1), true},
		{"earlier month", New(2024, time.January, 31), New(2024, time.February, 1), true},
		{"earlier day", New(2024, time.January, 4), New(2024, time.January, 5), true},
		{"equal", New(2024, time.January, 5), New(2024, time.January, 5), false},
		{"later", New(2024, time.January, 6), New(2024, time.January, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Before(tt.b); got != tt.want {
				t.Errorf("Before() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	var d Date
	if !d.IsZero() {
		t.Error("zero value IsZero() = false")
	}
	if New(2024, time.January, 5).IsZero() {
		t.Error("real date IsZero() = true")
	}
}
