package fsm

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAutomaton = errors.New("invalid automaton")
	ErrInvalidSymbol    = errors.New("invalid symbol")
	ErrSharedState      = errors.New("operands share a state")
)

// ValidationError describes which automaton invariant New found broken.
type ValidationError struct {
	Kind error
	Msg  string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *ValidationError) Unwrap() error { return e.Kind }

func invalidf(format string, args ...any) error {
	return &ValidationError{Kind: ErrInvalidAutomaton, Msg: fmt.Sprintf(format, args...)}
}
