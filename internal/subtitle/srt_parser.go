package subtitle

import (
	"fmt"
	"strconv"
	"strings"
)

const rangeMarker = "-->"

// Parse reads SubRip text into a Document. Blocks are separated by one or
// more blank lines and must hold an index line, a "START --> END" line and
// any number of dialogue lines. The first malformed block aborts the parse.
func Parse(text string) (*Document, error) {
	return ParseFormat(text, TimeFormatComma)
}

// ParseFormat is Parse for timing lines written in format.
func ParseFormat(text string, format TimeFormat) (*Document, error) {
	format = format.normalize()
	doc := &Document{
		LineEnding: "\n",
		Encoding:   "utf-8",
		TimeFormat: format,
	}

	if strings.HasPrefix(text, "\ufeff") {
		doc.BOM = true
		text = strings.TrimPrefix(text, "\ufeff")
	}
	if i := strings.IndexByte(text, '\n'); i > 0 && text[i-1] == '\r' {
		doc.LineEnding = "\r\n"
	}

	var (
		block     []string
		blockLine int
		blockNum  int
	)

	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		blockNum++
		cue, err := parseSRTBlock(block, blockNum, blockLine, format)
		if err != nil {
			return err
		}
		doc.Cues = append(doc.Cues, cue)
		block = nil
		return nil
	}

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSuffix(raw, "\r")

		if strings.TrimSpace(line) == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		if len(block) == 0 {
			blockLine = i + 1
		}
		block = append(block, line)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if len(doc.Cues) == 0 {
		return nil, newParseError(0, -1, 0, "no subtitle cues found")
	}

	return doc, nil
}

func parseSRTBlock(lines []string, blockNum, firstLine int, format TimeFormat) (Cue, error) {
	indexLine := strings.TrimSpace(lines[0])
	index, err := strconv.Atoi(indexLine)
	if err != nil {
		reason := fmt.Sprintf("invalid index line %q", indexLine)
		if strings.Contains(indexLine, rangeMarker) {
			reason = "missing index line before time range"
		}
		return Cue{}, newParseError(blockNum, -1, firstLine, reason)
	}

	if len(lines) < 2 || !strings.Contains(lines[1], rangeMarker) {
		return Cue{}, newParseError(
			blockNum,
			index,
			firstLine+1,
			"missing time range line (expected START --> END)",
		)
	}

	start, end, settings, err := parseSRTTimingLine(lines[1], format)
	if err != nil {
		pe := newParseError(blockNum, index, firstLine+1, "invalid time range")
		pe.Err = err
		return Cue{}, pe
	}
	if end < start {
		return Cue{}, newParseError(
			blockNum,
			index,
			firstLine+1,
			fmt.Sprintf("end %s is before start %s", end.Format(format), start.Format(format)),
		)
	}

	return Cue{
		Index:    index,
		Start:    start,
		End:      end,
		Settings: settings,
		Lines:    append([]string{}, lines[2:]...),
	}, nil
}

// splits "START --> END[ settings]"
func parseSRTTimingLine(line string, format TimeFormat) (Timestamp, Timestamp, string, error) {
	left, right, _ := strings.Cut(line, rangeMarker)

	start, err := format.Parse(left)
	if err != nil {
		return 0, 0, "", fmt.Errorf("start time: %w", err)
	}

	right = strings.TrimSpace(right)
	endStr, settings := right, ""
	if i := strings.IndexAny(right, " \t"); i >= 0 {
		endStr, settings = right[:i], right[i:]
	}
	end, err := format.Parse(endStr)
	if err != nil {
		return 0, 0, "", fmt.Errorf("end time: %w", err)
	}

	return start, end, strings.TrimSpace(settings), nil
}
