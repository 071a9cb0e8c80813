package subtitle

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// EncodingAuto detects the input encoding from its BOM and content.
const EncodingAuto = "auto"

const encodingUTF8 = "utf-8"

// decodeText converts raw file content to UTF-8 and reports the WHATWG name
// of the encoding it was read with.
func decodeText(data []byte, label string) (string, string, error) {
	enc, name, err := resolveEncoding(data, label)
	if err != nil {
		return "", "", err
	}
	if name == encodingUTF8 {
		return string(data), name, nil
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(decoded), name, nil
}

// encodeText is the inverse of decodeText for the named encoding.
func encodeText(text, name string) ([]byte, error) {
	if name == "" || name == encodingUTF8 {
		return []byte(text), nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	encoded, _, err := transform.Bytes(enc.NewEncoder(), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	return encoded, nil
}

func resolveEncoding(data []byte, label string) (encoding.Encoding, string, error) {
	label = strings.TrimSpace(label)
	if label != "" && !strings.EqualFold(label, EncodingAuto) {
		enc, err := htmlindex.Get(label)
		if err != nil {
			return nil, "", fmt.Errorf("unknown encoding %q: %w", label, err)
		}
		name, err := htmlindex.Name(enc)
		if err != nil {
			return nil, "", fmt.Errorf("unknown encoding %q: %w", label, err)
		}
		return enc, name, nil
	}

	// a BOM is authoritative; otherwise prefer UTF-8 whenever the whole
	// file is valid, since detection only samples the first kilobyte
	enc, name, certain := charset.DetermineEncoding(data, "")
	if certain {
		return enc, name, nil
	}
	// NUL bytes are valid UTF-8 but never appear in subtitle text
	if label, ok := sniffUTF16(data); ok {
		enc, err := htmlindex.Get(label)
		if err != nil {
			return nil, "", fmt.Errorf("unknown encoding %q: %w", label, err)
		}
		return enc, label, nil
	}
	if utf8.Valid(data) {
		return encoding.Nop, encodingUTF8, nil
	}
	return enc, name, nil
}

// sniffUTF16 recognizes BOM-less UTF-16 by where its NUL bytes fall: the
// high byte of ASCII code units is zero, odd offsets for little endian.
func sniffUTF16(data []byte) (string, bool) {
	sample := data
	if len(sample) > 1024 {
		sample = sample[:1024]
	}

	var even, odd int
	for i, b := range sample {
		if b != 0 {
			continue
		}
		if i%2 == 0 {
			even++
		} else {
			odd++
		}
	}

	switch {
	case even == 0 && odd == 0:
		return "", false
	case odd >= even:
		return "utf-16le", true
	default:
		return "utf-16be", true
	}
}
