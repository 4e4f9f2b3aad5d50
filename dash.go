package croquis

import "math"

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [4, 4] creates a pattern of 4 units dash, 4 units gap.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically duplicated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	Offset float64
}

// Span is a half-open interval [Start, End) along a line.
type Span struct {
	Start, End float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
//
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) *Dash {
	allZeroOrNeg := true
	for _, l := range lengths {
		if l > 0 {
			allZeroOrNeg = false
			break
		}
	}
	if allZeroOrNeg {
		return nil
	}

	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}
	return &Dash{Array: normalized}
}

// PatternLength returns the total length of one complete pattern cycle.
// For odd-length arrays, this includes the duplicated pattern.
func (d *Dash) PatternLength() float64 {
	if d == nil || len(d.Array) == 0 {
		return 0
	}

	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed returns true if this represents a dashed line (not solid).
// Returns false for nil Dash or empty/all-zero arrays.
func (d *Dash) IsDashed() bool {
	return d.PatternLength() > 0
}

// NormalizedOffset returns the offset normalized to be within one pattern cycle.
func (d *Dash) NormalizedOffset() float64 {
	patternLen := d.PatternLength()
	if patternLen <= 0 {
		return 0
	}

	offset := math.Mod(d.Offset, patternLen)
	if offset < 0 {
		offset += patternLen
	}
	return offset
}

// Segments splits a line of the given length into its "on" intervals.
// A nil or solid dash yields a single span covering the whole line.
func (d *Dash) Segments(length float64) []Span {
	if !(length > 0) {
		return nil
	}
	if !d.IsDashed() {
		return []Span{{0, length}}
	}

	arr := d.effectiveArray()
	off := d.NormalizedOffset()
	i := 0
	for off >= arr[i] {
		off -= arr[i]
		i = (i + 1) % len(arr)
	}

	var spans []Span
	pos, rem := 0.0, arr[i]-off
	for pos < length {
		end := math.Min(pos+rem, length)
		if i%2 == 0 && end > pos {
			spans = append(spans, Span{pos, end})
		}
		pos = end
		i = (i + 1) % len(arr)
		rem = arr[i]
	}
	return spans
}

// effectiveArray returns the array with odd-length arrays duplicated.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}

	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}
