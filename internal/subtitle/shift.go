package subtitle

import "math"

// ShiftStats summarizes what a shift had to clamp at zero.
type ShiftStats struct {
	Offset        int64
	Cues          int
	ClampedStarts int
	ClampedEnds   int
	// cues whose end landed on 00:00:00,000
	Collapsed int
}

// Warning returns a *RangeError when every cue collapsed onto zero.
func (s ShiftStats) Warning() error {
	if s.Offset < 0 && s.Cues > 0 && s.Collapsed == s.Cues {
		return &RangeError{Offset: s.Offset, Cues: s.Cues}
	}
	return nil
}

// Shift returns new cues with both boundaries moved by offset milliseconds
// and floored at zero. Index, settings, dialogue and order are untouched.
func Shift(cues []Cue, offset int64) ([]Cue, ShiftStats) {
	stats := ShiftStats{Offset: offset, Cues: len(cues)}
	shifted := make([]Cue, len(cues))

	for i, cue := range cues {
		var clamped bool

		cue.Start, clamped = cue.Start.add(offset)
		if clamped {
			stats.ClampedStarts++
		}
		cue.End, clamped = cue.End.add(offset)
		if clamped {
			stats.ClampedEnds++
		}
		if cue.End == 0 {
			stats.Collapsed++
		}
		cue.Lines = append([]string(nil), cue.Lines...)

		shifted[i] = cue
	}

	return shifted, stats
}

// reports whether the result was floored at zero
func (t Timestamp) add(offset int64) (Timestamp, bool) {
	sum := int64(t) + offset
	if offset > 0 && sum < int64(t) {
		return math.MaxInt64, false
	}
	if sum <= 0 {
		return 0, sum < 0
	}
	return Timestamp(sum), false
}
