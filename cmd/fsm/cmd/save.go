package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fsmkit/internal/store"
)

var saveFile string

// saveCmd represents the save command
var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the automaton as a YAML file",
	Long:  `Write the automaton as a YAML file that --input can read back.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAutomaton()
		if err != nil {
			return err
		}
		w, done, err := output(cmd, saveFile)
		if err != nil {
			return err
		}
		if err := store.Flush(w, a); err != nil {
			_ = done()
			return err
		}
		logger.Info("saved automaton", zap.String("file", saveFile), zap.Int("states", len(a.States())))
		return done()
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.Flags().StringVarP(&saveFile, "output", "o", "-", "output file, - for stdout")
}
