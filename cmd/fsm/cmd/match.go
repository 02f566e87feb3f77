package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fsmkit/internal/fsm"
)

// ErrRejected is returned by match when at least one word is rejected.
var ErrRejected = errors.New("rejected")

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match WORD...",
	Short: "Report whether the automaton accepts each word",
	Long: `Runs the automaton on every WORD and prints accept or reject for each.
Pass '' to test the empty string. Exits non-zero if any word is rejected.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadAutomaton()
		if err != nil {
			return err
		}
		rejected := 0
		for _, w := range args {
			verdict := "accept"
			if !fsm.Accepts(a, w) {
				verdict = "reject"
				rejected++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%q\n", verdict, w)
		}
		logger.Debug("matched words", zap.Int("words", len(args)), zap.Int("rejected", rejected))
		if rejected > 0 {
			return fmt.Errorf("%w: %d of %d words", ErrRejected, rejected, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
}
