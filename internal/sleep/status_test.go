package sleep

import (
	"bytes"
	"math"
	"testing"
	"time"
)

func TestReporter_Status(t *testing.T) {
	start := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		total   float64
		elapsed time.Duration
		want    string
	}{
		{
			name:    "whole seconds",
			total:   10,
			elapsed: 3 * time.Second,
			want:    "sleep: about 7 seconds(s) left out of the original 10",
		},
		{
			name:    "nothing elapsed",
			total:   60,
			elapsed: 0,
			want:    "sleep: about 60 seconds(s) left out of the original 60",
		},
		{
			name:    "fractional total",
			total:   2.5,
			elapsed: 0,
			want:    "sleep: about 2 seconds(s) left out of the original 2.5",
		},
		{
			name:    "rounds to nearest",
			total:   10,
			elapsed: 3300 * time.Millisecond,
			want:    "sleep: about 7 seconds(s) left out of the original 10",
		},
		{
			name:    "half rounds to even",
			total:   10,
			elapsed: 8500 * time.Millisecond,
			want:    "sleep: about 2 seconds(s) left out of the original 10",
		},
		{
			name:    "overran clamps to zero",
			total:   1,
			elapsed: 5 * time.Second,
			want:    "sleep: about 0 seconds(s) left out of the original 1",
		},
		{
			name:    "infinite",
			total:   math.Inf(1),
			elapsed: time.Hour,
			want:    "sleep: about infinity seconds(s) left out of the original infinity",
		},
		{
			name:    "large whole total",
			total:   2 * MaxSegment,
			elapsed: 0,
			want:    "sleep: about 2000000000 seconds(s) left out of the original 2000000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reporter{Total: tt.total, Start: start}
			if got := r.Status(start.Add(tt.elapsed)); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReporter_Report(t *testing.T) {
	start := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	r := Reporter{Total: 10, Start: start}

	var buf bytes.Buffer
	if err := r.Report(&buf, start.Add(3*time.Second)); err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	want := "sleep: about 7 seconds(s) left out of the original 10\n"
	if buf.String() != want {
		t.Errorf("Report wrote %q, want %q", buf.String(), want)
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{10, "10"},
		{0.1, "0.1"},
		{2.5, "2.5"},
		{1e20, "100000000000000000000"},
		{1e-7, "1e-07"},
		{math.Inf(1), "infinity"},
	}

	for _, tt := range tests {
		if got := FormatSeconds(tt.in); got != tt.want {
			t.Errorf("FormatSeconds(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
