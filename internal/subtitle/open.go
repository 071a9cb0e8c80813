package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile loads and parses a SubRip file. label names the character
// encoding ("auto", "utf-8", "windows-1252", ...) and format the layout of
// its timing lines.
func ReadFile(path, label string, format TimeFormat) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".vtt", ".ass", ".ssa":
		return nil, fmt.Errorf("unsupported subtitle format: %s (only SubRip is supported)", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	text, name, err := decodeText(data, label)
	if err != nil {
		return nil, &IOError{Op: "decode", Path: path, Err: err}
	}

	doc, err := ParseFormat(text, format)
	if err != nil {
		return nil, err
	}
	doc.Encoding = name

	return doc, nil
}
