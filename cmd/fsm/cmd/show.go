package cmd

import (
	"github.com/spf13/cobra"

	"fsmkit/internal/render"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the automaton's alphabet, states and transitions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAutomaton()
		if err != nil {
			return err
		}
		return render.Text(cmd.OutOrStdout(), a)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
