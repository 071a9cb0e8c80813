package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mgpai22/srtshift/internal/subtitle"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check [subtitle_file]",
		Short: "Validate a subtitle file without writing anything",
		Long: `Parse an SRT file and report its cue count and time span.

Exits with a non-zero status and names the offending block when the
file is malformed.

Examples:
  srtshift check movie.srt
  srtshift check movie.srt --encoding windows-1252
  srtshift check movie.srt --time-format HH:MM:SS.mmm`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}

	addEncodingFlag(checkCmd)
	addTimeFormatFlag(checkCmd)

	return checkCmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	timeFormat, err := subtitle.ParseTimeFormat(cfg.TimeFormat)
	if err != nil {
		return err
	}

	doc, err := subtitle.ReadFile(subtitlePath, cfg.Encoding, timeFormat)
	if err != nil {
		return fmt.Errorf("invalid subtitle file: %w", err)
	}

	first, last := doc.Span()
	logger.Infow("Parsed subtitle file",
		"cues", len(doc.Cues),
		"encoding", doc.Encoding,
	)

	absPath, _ := filepath.Abs(subtitlePath)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Subtitle file is valid: %s\n", absPath)
	fmt.Fprintf(out, "  Cues: %d\n", len(doc.Cues))
	fmt.Fprintf(out, "  Encoding: %s\n", doc.Encoding)
	fmt.Fprintf(out, "  Span: %s --> %s\n", first.Format(timeFormat), last.Format(timeFormat))

	return nil
}
