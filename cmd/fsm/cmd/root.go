package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fsmkit/internal/config"
	"fsmkit/internal/fsm"
	"fsmkit/internal/regexlib"
	"fsmkit/internal/store"
)

var (
	pattern   string
	inputFile string
	useDFA    bool

	cfg    *config.Config
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fsm",
	Short: "Build, determinise and run finite automata",
	Long: `fsm builds a Thompson NFA from a pattern (-e) or loads an automaton from a
YAML file (-i), optionally turns it into a DFA with the subset construction
(--dfa), and then matches, prints, saves or draws it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger, err = config.NewLogger(cfg)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&pattern, "regex", "e", "", "pattern to compile, e.g. '(a|b)*c'")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "YAML automaton file")
	rootCmd.PersistentFlags().BoolVar(&useDFA, "dfa", false, "work on the DFA from the subset construction")
}

// loadAutomaton returns the automaton selected by the persistent flags.
func loadAutomaton() (*fsm.Automaton, error) {
	switch {
	case pattern != "" && inputFile != "":
		return nil, errors.New("--regex and --input are mutually exclusive")
	case pattern != "":
		re, err := regexlib.Compile(pattern, regexlib.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		if useDFA {
			return re.DFA(), nil
		}
		return re.NFA(), nil
	case inputFile != "":
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = f.Close()
		}()
		a, err := store.Load(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", inputFile, err)
		}
		logger.Debug("loaded automaton", zap.String("file", inputFile), zap.Int("states", len(a.States())))
		if useDFA {
			return fsm.ToDFA(a), nil
		}
		return a, nil
	default:
		return nil, errors.New("one of --regex or --input is required")
	}
}

// output opens path for writing; "" or "-" means the command's own output.
func output(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
