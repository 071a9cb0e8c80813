package subtitle

// milliseconds since the start of the subtitle timeline
type Timestamp int64

// represents single subtitle entry
type Cue struct {
	Index int
	Start Timestamp
	End   Timestamp
	// text after the end timestamp on the timing line, e.g. "X1:40 X2:600"
	Settings string
	Lines    []string
}

// TimingLine renders "START --> END[ settings]" in the given format.
func (c Cue) TimingLine(f TimeFormat) string {
	line := c.Start.Format(f) + " " + rangeMarker + " " + c.End.Format(f)
	if c.Settings != "" {
		line += " " + c.Settings
	}
	return line
}

// represents complete subtitle document
type Document struct {
	Cues []Cue
	// source had a UTF-8 byte order mark
	BOM bool
	// "\n" or "\r\n"
	LineEnding string
	// WHATWG name of the source character encoding
	Encoding string
	// layout of the timing lines; the zero value is SubRip's comma form
	TimeFormat TimeFormat
}

// returns a copy of the document with every cue shifted by offset milliseconds
func (d *Document) Shift(offset int64) (*Document, ShiftStats) {
	cues, stats := Shift(d.Cues, offset)
	shifted := *d
	shifted.Cues = cues
	return &shifted, stats
}

// first start and last end across all cues
func (d *Document) Span() (Timestamp, Timestamp) {
	if len(d.Cues) == 0 {
		return 0, 0
	}
	first, last := d.Cues[0].Start, d.Cues[0].End
	for _, cue := range d.Cues[1:] {
		if cue.Start < first {
			first = cue.Start
		}
		if cue.End > last {
			last = cue.End
		}
	}
	return first, last
}
