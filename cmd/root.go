package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/db"
)

var (
	verbose bool
	dbPath  string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "fretdex",
	Short: "Guitar chords and scales on a fretboard",
	Long: `fretdex browses chord voicings and scale shapes for a standard-tuned guitar.

Chords come from a chords-db guitar.json file (--db or CHORDS_DB_PATH).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// the terminal UI owns the screen
		if cmd.Name() == "play" {
			return nil
		}

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", constants.GetChordsDBPath(), "path to chords-db guitar.json")
}

func openSource() (*db.Source, error) {
	return db.Open(dbPath, logger)
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
