package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/theory"
)

var (
	scalesKey  string
	scalesView int
)

func init() {
	scalesCmd.Flags().StringVarP(&scalesKey, "key", "k", "C", "root note")
	scalesCmd.Flags().IntVar(&scalesView, "view", 0, "fret window 0-3")
	rootCmd.AddCommand(scalesCmd)
}

var scalesCmd = &cobra.Command{
	Use:   "scales [scale name]",
	Short: "Lists scales or draws one",
	Long:  `Lists the notes of every scale in a key, or draws one scale on the fretboard.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := theory.PitchClassOf(scalesKey)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			for _, s := range theory.Scales {
				fmt.Fprintf(out, "%-24s %s\n", s.Name, noteList(theory.ScaleNotes(s, root)))
			}
			return nil
		}

		scale, err := theory.ScaleByName(args[0])
		if err != nil {
			return err
		}
		view, err := fretboard.ViewByID(scalesView)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s: %s\n", root, scale.Name, noteList(theory.ScaleNotes(scale, root)))
		fmt.Fprint(out, fretboard.RenderText(fretboard.NewScaleDiagram(scale, root, view), fretboard.TextStyle{}))
		return nil
	},
}

func noteList(pcs []theory.PitchClass) string {
	names := make([]string, len(pcs))
	for i, pc := range pcs {
		names[i] = pc.String()
	}
	return strings.Join(names, " ")
}
