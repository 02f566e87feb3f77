package regexlib

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"fsmkit/internal/fsm"
)

var ErrEmptyPattern = errors.New("empty pattern")

// Regex is a compiled pattern: its Thompson NFA and the DFA obtained from it
// by the subset construction.
type Regex struct {
	pattern string
	nfa     *fsm.Automaton
	dfa     *fsm.Automaton
}

type options struct {
	builder *fsm.Builder
	logger  *zap.Logger
}

type Option func(*options)

// WithBuilder makes Compile mint states from b instead of the process-wide
// allocator.
func WithBuilder(b *fsm.Builder) Option {
	return func(o *options) { o.builder = b }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

func Compile(pattern string, opts ...Option) (*Regex, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.builder == nil {
		o.builder = fsm.NewBuilder(nil)
	}
	if pattern == "" {
		return nil, ErrEmptyPattern
	}

	began := time.Now()
	ast, err := parse(pattern)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", pattern, err)
	}
	nfa := (&compiler{b: o.builder}).expr(ast)
	dfa := o.builder.ToDFA(nfa)

	o.logger.Debug("compiled pattern",
		zap.String("pattern", pattern),
		zap.Int("nfa_states", len(nfa.States())),
		zap.Int("dfa_states", len(dfa.States())),
		zap.Duration("elapsed", time.Since(began)),
	)
	return &Regex{pattern: pattern, nfa: nfa, dfa: dfa}, nil
}

func MustCompile(pattern string, opts ...Option) *Regex {
	r, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// MatchString reports whether the whole of s is in the pattern's language,
// running the DFA.
func (r *Regex) MatchString(s string) bool { return fsm.Accepts(r.dfa, s) }

// MatchNFA is MatchString run on the NFA instead.
func (r *Regex) MatchNFA(s string) bool { return fsm.Accepts(r.nfa, s) }

func (r *Regex) NFA() *fsm.Automaton { return r.nfa }
func (r *Regex) DFA() *fsm.Automaton { return r.dfa }
func (r *Regex) String() string { return r.pattern }
