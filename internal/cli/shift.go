package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mgpai22/srtshift/internal/config"
	"github.com/mgpai22/srtshift/internal/logging"
	"github.com/mgpai22/srtshift/internal/subtitle"
	"github.com/spf13/cobra"
)

func newShiftCmd() *cobra.Command {
	shiftCmd := &cobra.Command{
		Use:   "shift [subtitle_file]",
		Short: "Shift all timestamps in a subtitle file by an offset",
		Long: `Shift every start and end timestamp in an SRT file by the same offset.

The offset is a signed number of milliseconds, or a duration such as 1.5s
or -1m2s. Cue numbers, positioning and dialogue are copied unchanged, and
the output keeps the input's character encoding and line endings.

Without --output the result is written next to the input as
<name>.<suffix>.srt. An existing output file is overwritten.

Examples:
  srtshift shift movie.srt --offset 2500
  srtshift shift movie.srt -d -2000 -o movie.fixed.srt
  srtshift shift movie.srt --offset -1.5s --encoding windows-1252
  srtshift shift movie.srt -d 500 --dry-run
  srtshift shift movie.srt -d 500 --time-format HH:MM:SS.mmm`,
		Args: cobra.ExactArgs(1),
		RunE: runShift,
	}

	shiftCmd.Flags().
		StringP("offset", "d", "", "Offset in milliseconds (e.g. -2000) or as a duration (e.g. 1.5s)")
	shiftCmd.Flags().StringP("output", "o", "", "Output file path")
	shiftCmd.Flags().
		String("suffix", config.DefaultSuffix, "Suffix for the derived output name when --output is not set")
	shiftCmd.Flags().
		Bool("dry-run", false, "Print the shifted subtitles to stdout instead of writing a file")
	addEncodingFlag(shiftCmd)
	addTimeFormatFlag(shiftCmd)

	_ = shiftCmd.MarkFlagRequired("offset")

	return shiftCmd
}

func runShift(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	offsetStr, _ := cmd.Flags().GetString("offset")
	outputPath, _ := cmd.Flags().GetString("output")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	offset, err := subtitle.ParseOffset(offsetStr)
	if err != nil {
		return err
	}
	timeFormat, err := subtitle.ParseTimeFormat(cfg.TimeFormat)
	if err != nil {
		return err
	}

	if outputPath == "" {
		outputPath = subtitle.DefaultOutputPath(inputPath, cfg.Suffix)
	}

	logger.Infow("Starting timestamp shift",
		"input", inputPath,
		"output", outputPath,
		"offset_ms", offset,
		"encoding", cfg.Encoding,
		"time_format", timeFormat,
		"dry_run", dryRun,
	)

	doc, err := subtitle.ReadFile(inputPath, cfg.Encoding, timeFormat)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	logger.Debugw("Parsed subtitle file",
		"cues", len(doc.Cues),
		"encoding", doc.Encoding,
		"bom", doc.BOM,
		"crlf", doc.LineEnding == "\r\n",
	)

	shifted, stats := doc.Shift(offset)
	if cfg.Verbose {
		logShiftedCues(logger, doc, shifted)
	}

	if stats.ClampedStarts > 0 || stats.ClampedEnds > 0 {
		logger.Warnw("Timestamps clamped at 00:00:00,000",
			"starts", stats.ClampedStarts,
			"ends", stats.ClampedEnds,
		)
	}
	if warning := stats.Warning(); warning != nil {
		logger.Warnw("Shifted subtitles are degenerate",
			"reason", warning.Error(),
		)
	}

	if dryRun {
		_, err := fmt.Fprint(cmd.OutOrStdout(), subtitle.Render(shifted))
		return err
	}

	if err := subtitle.WriteFile(shifted, outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Subtitles shifted successfully: %s\n", absOutput)
	fmt.Fprintf(out, "  Cues: %d\n", len(shifted.Cues))
	fmt.Fprintf(out, "  Offset: %+dms\n", offset)

	return nil
}

// logs the old and new timing line of every cue
func logShiftedCues(log *logging.Logger, before, after *subtitle.Document) {
	for i, cue := range before.Cues {
		log.Debugw("Shifted cue",
			"index", cue.Index,
			"old", cue.TimingLine(before.TimeFormat),
			"new", after.Cues[i].TimingLine(after.TimeFormat),
		)
	}
}
