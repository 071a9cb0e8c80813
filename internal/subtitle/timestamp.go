package subtitle

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

var timestampRegex = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2})([,.])(\d{3})$`)

// TimeFormat is the layout of timestamps on a timing line. SubRip puts a
// comma before the milliseconds; some tools write a dot instead.
type TimeFormat string

const (
	TimeFormatComma TimeFormat = "HH:MM:SS,mmm"
	TimeFormatDot   TimeFormat = "HH:MM:SS.mmm"
)

// ParseTimeFormat accepts either layout, also in strftime form
// ("%H:%M:%S,%f"). An empty string selects the SubRip default.
func ParseTimeFormat(s string) (TimeFormat, error) {
	switch strings.TrimSpace(s) {
	case "", string(TimeFormatComma), "%H:%M:%S,%f":
		return TimeFormatComma, nil
	case string(TimeFormatDot), "%H:%M:%S.%f":
		return TimeFormatDot, nil
	}
	return "", fmt.Errorf(
		"unsupported time format %q: use %s or %s",
		s,
		TimeFormatComma,
		TimeFormatDot,
	)
}

// the zero value behaves as TimeFormatComma
func (f TimeFormat) normalize() TimeFormat {
	if f == TimeFormatDot {
		return TimeFormatDot
	}
	return TimeFormatComma
}

func (f TimeFormat) separator() string {
	if f.normalize() == TimeFormatDot {
		return "."
	}
	return ","
}

// parses HH:MM:SS,mmm into milliseconds
func ParseTimestamp(s string) (Timestamp, error) {
	return TimeFormatComma.Parse(s)
}

// Parse reads a timestamp written in this format into milliseconds.
func (f TimeFormat) Parse(s string) (Timestamp, error) {
	matches := timestampRegex.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil || matches[4] != f.separator() {
		return 0, fmt.Errorf("invalid timestamp %q: expected %s", s, f.normalize())
	}

	h, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil || h > (1<<62)/msPerHour {
		return 0, fmt.Errorf("invalid timestamp %q: hours out of range", s)
	}
	// two-digit fields always fit
	m, _ := strconv.ParseInt(matches[2], 10, 64)
	sec, _ := strconv.ParseInt(matches[3], 10, 64)
	ms, _ := strconv.ParseInt(matches[5], 10, 64)

	if m > 59 {
		return 0, fmt.Errorf("invalid timestamp %q: minutes out of range", s)
	}
	if sec > 59 {
		return 0, fmt.Errorf("invalid timestamp %q: seconds out of range", s)
	}

	return Timestamp(((h*60+m)*60+sec)*msPerSecond + ms), nil
}

// formats as HH:MM:SS,mmm; negative values render as zero
func (t Timestamp) String() string {
	return t.Format(TimeFormatComma)
}

// Format renders t in the given layout, flooring negative values at zero.
func (t Timestamp) Format(f TimeFormat) string {
	if t < 0 {
		t = 0
	}
	ms := int64(t)
	hours := ms / msPerHour
	minutes := ms % msPerHour / msPerMinute
	seconds := ms % msPerMinute / msPerSecond
	millis := ms % msPerSecond

	return fmt.Sprintf(
		"%02d:%02d:%02d%s%03d",
		hours,
		minutes,
		seconds,
		f.separator(),
		millis,
	)
}

// ParseOffset accepts a signed integer number of milliseconds ("-2000") or
// a Go duration string ("-1.5s", "1m30s").
func ParseOffset(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("offset is empty")
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ms, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf(
			"invalid offset %q: use milliseconds (e.g. -2000) or a duration (e.g. -2s)",
			s,
		)
	}
	if d%time.Millisecond != 0 {
		return 0, fmt.Errorf("invalid offset %q: finer than one millisecond", s)
	}
	return d.Milliseconds(), nil
}
