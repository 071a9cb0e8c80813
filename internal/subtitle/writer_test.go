package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderRoundTrip(t *testing.T) {
	inputs := map[string]string{
		"lf":       sampleSRT,
		"crlf":     strings.ReplaceAll(sampleSRT, "\n", "\r\n"),
		"bom":      "\ufeff" + sampleSRT,
		"settings": "1\n00:00:01,000 --> 00:00:02,000 X1:40 X2:600 Y1:20 Y2:50\n<b>Bold</b>\n",
		"no text":  "5\n00:00:01,000 --> 00:00:02,000\n\n6\n00:00:03,000 --> 00:00:04,000\nB\n",
		"long":     "1\n123:45:59,999 --> 124:00:00,000\nLate\n",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			doc := mustParse(t, input)
			if got := Render(doc); got != input {
				t.Errorf("round trip mismatch:\n got %q\nwant %q", got, input)
			}
		})
	}
}

func TestRenderNormalizesSpacing(t *testing.T) {
	input := "\n\n1\n00:00:01,000-->00:00:02,000\nA\n\n\n\n2\n00:00:03,000   -->   00:00:04,000\nB"
	want := "1\n00:00:01,000 --> 00:00:02,000\nA\n\n2\n00:00:03,000 --> 00:00:04,000\nB\n"

	if got := Render(mustParse(t, input)); got != want {
		t.Errorf("Render:\n got %q\nwant %q", got, want)
	}
}

func TestWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	outPath := filepath.Join(tmpDir, "nested", "out.srt")

	doc := mustParse(t, sampleSRT)
	if err := WriteFile(doc, outPath); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(content) != sampleSRT {
		t.Errorf("unexpected output:\n got %q\nwant %q", content, sampleSRT)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("failed to stat output: %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("expected mode 0644, got %v", info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(outPath))
	if err != nil {
		t.Fatalf("failed to list output dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the output file, found %d entries", len(entries))
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.srt")
	if err := os.WriteFile(outPath, []byte("stale content that is longer than the new one\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n"), 0644); err != nil {
		t.Fatalf("failed to seed output: %v", err)
	}

	doc := mustParse(t, "1\n00:00:01,000 --> 00:00:02,000\nA\n")
	if err := WriteFile(doc, outPath); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	content, _ := os.ReadFile(outPath)
	if string(content) != "1\n00:00:01,000 --> 00:00:02,000\nA\n" {
		t.Errorf("output not replaced, got %q", content)
	}
}

func TestWriteFileUnwritable(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create blocker: %v", err)
	}

	doc := mustParse(t, sampleSRT)
	err := WriteFile(doc, filepath.Join(blocker, "out.srt"))
	if err == nil {
		t.Fatal("expected error when parent is a regular file")
	}
	if !strings.Contains(err.Error(), "failed to write") {
		t.Errorf("expected write error, got: %v", err)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input  string
		suffix string
		want   string
	}{
		{"movie.srt", "shifted", "movie.shifted.srt"},
		{"movie.en.srt", "shifted", "movie.en.shifted.srt"},
		{filepath.Join("dir", "movie.SRT"), "resync", filepath.Join("dir", "movie.resync.SRT")},
		{"movie", "shifted", "movie.shifted.srt"},
		{"movie.srt", "", "movie.srt"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := DefaultOutputPath(tt.input, tt.suffix); got != tt.want {
				t.Errorf("DefaultOutputPath(%q, %q) = %q, want %q", tt.input, tt.suffix, got, tt.want)
			}
		})
	}
}

func TestRenderDotTimeFormat(t *testing.T) {
	input := "1\n00:00:01.000 --> 00:00:02.000\nHi\n\n2\n00:00:03.500 --> 00:00:04.250 X1:40\nThere\n"

	doc, err := ParseFormat(input, TimeFormatDot)
	if err != nil {
		t.Fatalf("ParseFormat returned error: %v", err)
	}
	if got := Render(doc); got != input {
		t.Errorf("round trip mismatch:\n got %q\nwant %q", got, input)
	}

	shifted, _ := doc.Shift(1000)
	want := "1\n00:00:02.000 --> 00:00:03.000\nHi\n\n2\n00:00:04.500 --> 00:00:05.250 X1:40\nThere\n"
	if got := Render(shifted); got != want {
		t.Errorf("shifted render:\n got %q\nwant %q", got, want)
	}
}
