package cmd

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jsphweid/fretdex/session"
	"github.com/jsphweid/fretdex/tui"
)

func init() {
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive fretboard",
	Long:  `Browse chords and scales on an interactive fretboard in the terminal.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := openSource()
		if err != nil {
			return err
		}
		s := session.New(src.Library(), rand.New(rand.NewSource(time.Now().UnixNano())))
		_, err = tea.NewProgram(tui.New(s), tea.WithAltScreen()).Run()
		return err
	},
}
