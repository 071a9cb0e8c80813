package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Render serializes a document back to SubRip text using its line ending,
// restoring the byte order mark when the source had one.
func Render(doc *Document) string {
	nl := doc.LineEnding
	if nl == "" {
		nl = "\n"
	}

	var sb strings.Builder
	if doc.BOM {
		sb.WriteString("\ufeff")
	}

	for i, cue := range doc.Cues {
		if i > 0 {
			sb.WriteString(nl)
		}

		sb.WriteString(strconv.Itoa(cue.Index))
		sb.WriteString(nl)

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(cue.TimingLine(doc.TimeFormat))
		sb.WriteString(nl)

		for _, line := range cue.Lines {
			sb.WriteString(line)
			sb.WriteString(nl)
		}
	}

	return sb.String()
}

// WriteFile renders doc in its source encoding and replaces path atomically,
// so a failed write never leaves a truncated or partial file behind.
func WriteFile(doc *Document, path string) error {
	data, err := encodeText(Render(doc), doc.Encoding)
	if err != nil {
		return &IOError{Op: "encode", Path: path, Err: err}
	}

	if err := writeFileAtomic(path, data); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(
		filepath.Dir(path),
		"."+filepath.Base(path)+".*.tmp",
	)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once renamed
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// DefaultOutputPath derives "movie.shifted.srt" from "movie.srt".
func DefaultOutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	baseName := strings.TrimSuffix(input, ext)
	if ext == "" {
		ext = ".srt"
	}
	if suffix == "" {
		return fmt.Sprintf("%s%s", baseName, ext)
	}
	return fmt.Sprintf("%s.%s%s", baseName, suffix, ext)
}
