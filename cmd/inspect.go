package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/fretdex/fretboard"
)

var inspectView int

func init() {
	inspectCmd.Flags().IntVar(&inspectView, "view", -1, "fret window 0-3 (default: one that fits each voicing)")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <chord>",
	Short: "Shows every voicing of a chord",
	Long:  `Shows every voicing of a chord with its fretted, open and muted strings.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := openSource()
		if err != nil {
			return err
		}
		c, ok := src.Library().Find(args[0])
		if !ok {
			return fmt.Errorf("no chord named %q", args[0])
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (key %s, %s)\n", c.Name, c.Key, c.Type)
		for _, v := range c.Voicings {
			view, err := viewFor(v.BaseFret)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%s\n", v.Name)
			fmt.Fprintf(out, "  fretted: %v\n  open: %v\n  muted: %v\n", v.Positions, v.OpenStrings, v.MutedStrings)
			fmt.Fprint(out, fretboard.RenderText(fretboard.NewChordDiagram(v, view), fretboard.TextStyle{}))
		}
		return nil
	},
}

// viewFor picks the flag's view, or a five-fret window starting at the
// voicing's base fret.
func viewFor(baseFret int) (fretboard.View, error) {
	if inspectView >= 0 {
		return fretboard.ViewByID(inspectView)
	}
	return fretboard.View{Label: "auto", StartFret: baseFret, FretsVisible: 5}, nil
}
