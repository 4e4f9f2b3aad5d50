package croquis

import (
	"math"
	"testing"
)

func TestNewDash(t *testing.T) {
	tests := []struct {
		name      string
		lengths   []float64
		wantNil   bool
		wantArray []float64
	}{
		{name: "empty input returns nil", lengths: []float64{}, wantNil: true},
		{name: "nil input returns nil", lengths: nil, wantNil: true},
		{name: "all zeros returns nil", lengths: []float64{0, 0, 0}, wantNil: true},
		{name: "simple dash-gap pattern", lengths: []float64{4, 4}, wantArray: []float64{4, 4}},
		{name: "single value", lengths: []float64{5}, wantArray: []float64{5}},
		{name: "negative values become absolute", lengths: []float64{-5, 3}, wantArray: []float64{5, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewDash(tt.lengths...)
			if tt.wantNil {
				if got != nil {
					t.Errorf("NewDash() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("NewDash() = nil, want non-nil")
			}
			if len(got.Array) != len(tt.wantArray) {
				t.Fatalf("NewDash().Array length = %d, want %d", len(got.Array), len(tt.wantArray))
			}
			for i, v := range got.Array {
				if v != tt.wantArray[i] {
					t.Errorf("NewDash().Array[%d] = %v, want %v", i, v, tt.wantArray[i])
				}
			}
		})
	}
}

func TestDash_PatternLength(t *testing.T) {
	tests := []struct {
		name string
		dash *Dash
		want float64
	}{
		{"nil", nil, 0},
		{"even", NewDash(4, 4), 8},
		{"odd duplicates", NewDash(5), 10},
		{"complex", NewDash(10, 5, 2, 5), 22},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dash.PatternLength(); got != tt.want {
				t.Errorf("PatternLength() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDash_NormalizedOffset(t *testing.T) {
	tests := []struct {
		offset float64
		want   float64
	}{
		{0, 0},
		{3, 3},
		{8, 0},
		{11, 3},
		{-1, 7},
	}
	for _, tt := range tests {
		d := &Dash{Array: []float64{4, 4}, Offset: tt.offset}
		if got := d.NormalizedOffset(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("NormalizedOffset(%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestDash_Segments(t *testing.T) {
	tests := []struct {
		name   string
		dash   *Dash
		length float64
		want   []Span
	}{
		{"solid nil", nil, 10, []Span{{0, 10}}},
		{"zero length", NewDash(4, 4), 0, nil},
		{"four on four off", NewDash(4, 4), 20, []Span{{0, 4}, {8, 12}, {16, 20}}},
		{"truncated dash", NewDash(4, 4), 18, []Span{{0, 4}, {8, 12}, {16, 18}}},
		{"ends in gap", NewDash(4, 4), 14, []Span{{0, 4}, {8, 12}}},
		{"offset inside dash", &Dash{Array: []float64{4, 4}, Offset: 2}, 12, []Span{{0, 2}, {6, 10}}},
		{"offset inside gap", &Dash{Array: []float64{4, 4}, Offset: 6}, 10, []Span{{2, 6}}},
		{"odd pattern", NewDash(3), 12, []Span{{0, 3}, {6, 9}}},
		{"zero dash entries", NewDash(0, 2, 3, 1), 6, []Span{{2, 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.dash.Segments(tt.length)
			if len(got) != len(tt.want) {
				t.Fatalf("Segments(%v) = %v, want %v", tt.length, got, tt.want)
			}
			for i := range got {
				if math.Abs(got[i].Start-tt.want[i].Start) > 1e-9 || math.Abs(got[i].End-tt.want[i].End) > 1e-9 {
					t.Errorf("Segments(%v)[%d] = %v, want %v", tt.length, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDash_SegmentsSubGridPattern(t *testing.T) {
	spans := NewDash(4, 4).Segments(2048)
	if len(spans) != 256 {
		t.Fatalf("len(Segments(2048)) = %d, want 256", len(spans))
	}
	var on float64
	for _, s := range spans {
		on += s.End - s.Start
	}
	if on != 1024 {
		t.Errorf("total dash coverage = %v, want 1024", on)
	}
}
