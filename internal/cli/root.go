package cli

import (
	"github.com/mgpai22/srtshift/internal/config"
	"github.com/mgpai22/srtshift/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger = logging.Nop()
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "srtshift",
		Short: "Shift every timestamp in an SRT subtitle file",
		Long: `srtshift moves all timestamps in a SubRip (.srt) subtitle file
by a fixed offset and writes a corrected copy.

Use a positive offset when subtitles appear too early and a negative
offset when they appear too late. Times never go below 00:00:00,000.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			loaded, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			cfg = loaded
			logger = logging.NewLogger(cfg.Verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().
		BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		String("config", "", "YAML config file with encoding, suffix and verbose defaults")

	rootCmd.AddCommand(newShiftCmd(), newCheckCmd())

	return rootCmd
}

func Execute() error {
	return newRootCmd().Execute()
}

func addEncodingFlag(cmd *cobra.Command) {
	cmd.Flags().
		StringP("encoding", "e", config.DefaultEncoding, "Input character encoding (auto, utf-8, windows-1252, utf-16le, ...)")
}

func addTimeFormatFlag(cmd *cobra.Command) {
	cmd.Flags().
		StringP("time-format", "t", config.DefaultTimeFormat, "Timestamp layout: HH:MM:SS,mmm or HH:MM:SS.mmm (strftime %H:%M:%S,%f also accepted)")
}
