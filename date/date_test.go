package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNew_Normalizes(t *testing.T) {
	testCases := []struct {
		name string
		got  Date
		want Date
	}{
		{"plain", New(2025, time.March, 15), Date{2025, time.March, 15}},
		{"day overflow", New(2025, time.January, 32), Date{2025, time.February, 1}},
		{"month overflow", New(2025, time.Month(13), 1), Date{2026, time.January, 1}},
		{"leap day", New(2024, time.February, 29), Date{2024, time.February, 29}},
		{"non leap day", New(2025, time.February, 29), Date{2025, time.March, 1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-01-10", want: New(2025, time.January, 10)},
		{in: "2025-1-2", want: New(2025, time.January, 2)},
		{in: "10.01.2025", wantErr: true},
		{in: "not a date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2025, time.June, 3)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2025-06-03"` {
		t.Errorf("Marshal = %s, want %q", b, `"2025-06-03"`)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestAddSub(t *testing.T) {
	d := New(2025, time.February, 27)
	if got := d.Add(2); got != New(2025, time.March, 1) {
		t.Errorf("Add(2) = %v", got)
	}
	if got := d.Add(2).Sub(d); got != 2 {
		t.Errorf("Sub = %d, want 2", got)
	}
	if got := d.Sub(d.Add(5)); got != -5 {
		t.Errorf("Sub = %d, want -5", got)
	}
}

func TestRange(t *testing.T) {
	r := NewRange(MustParse("2025-01-30"), MustParse("2025-02-02"))
	if got := r.Days(); got != 4 {
		t.Errorf("Days() = %d, want 4", got)
	}
	var seen []Date
	for d := range r.All() {
		seen = append(seen, d)
	}
	want := []Date{
		MustParse("2025-01-30"),
		MustParse("2025-01-31"),
		MustParse("2025-02-01"),
		MustParse("2025-02-02"),
	}
	if len(seen) != len(want) {
		t.Fatalf("All() yielded %d dates, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("All()[%d] = %v, want %v", i, seen[i], want[i])
		}
	}
	if r.Contains(MustParse("2025-01-29")) {
		t.Error("Contains should exclude the day before From")
	}
	if !r.Contains(r.From) || !r.Contains(r.To) {
		t.Error("Contains should include boundaries")
	}
}
