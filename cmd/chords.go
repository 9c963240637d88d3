package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/fretdex/chord"
)

var chordsKey string

func init() {
	chordsCmd.Flags().StringVarP(&chordsKey, "key", "k", chord.AnyKeyName, "only chords diatonic to this major key")
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords",
	Short: "Lists chords",
	Long:  `Lists chords, optionally only the triads and seventh chords of one major key.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := chord.ParseKeyFilter(chordsKey)
		if err != nil {
			return err
		}
		src, err := openSource()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		chords := src.Library().Filter(filter)
		for _, c := range chords {
			fmt.Fprintf(out, "%-12s %d voicings\n", c.Name, len(c.Voicings))
		}
		fmt.Fprintf(out, "%d chords (key %s)\n", len(chords), filter)
		return nil
	},
}
