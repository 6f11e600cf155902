package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrAmbiguousMatch is the sentinel for AmbiguousMatchError.
	ErrAmbiguousMatch = errors.New("match is ambiguous")

	// ErrTransitionIsIllegal is the sentinel for TransitionIsIllegalError.
	ErrTransitionIsIllegal = errors.New("transition is illegal")
)

// AmbiguousMatchError reports a search that had to resolve to exactly one object
// but matched Matches objects instead.
type AmbiguousMatchError struct {
	ParamName string
	Value     any
	Matches   int
	Cause     error
}

// NewAmbiguousMatchError creates an AmbiguousMatchError without cause.
func NewAmbiguousMatchError(paramName string, value any, matches int) *AmbiguousMatchError {
	return &AmbiguousMatchError{
		ParamName: paramName,
		Value:     value,
		Matches:   matches,
	}
}

// NewAmbiguousMatchErrorWithCause creates an AmbiguousMatchError wrapping cause.
func NewAmbiguousMatchErrorWithCause(paramName string, value any, matches int, cause error) *AmbiguousMatchError {
	return &AmbiguousMatchError{
		ParamName: paramName,
		Value:     value,
		Matches:   matches,
		Cause:     cause,
	}
}

func (e *AmbiguousMatchError) Error() string {
	msg := fmt.Sprintf("%s: %s %q matched %d, expected exactly 1",
		ErrAmbiguousMatch, e.ParamName, sanitize(e.Value), e.Matches)
	return withCause(msg, e.Cause)
}

func (e *AmbiguousMatchError) Unwrap() error {
	return ErrAmbiguousMatch
}

// TransitionIsIllegalError reports a lifecycle step requested from a state
// that does not precede it.
type TransitionIsIllegalError struct {
	From  string
	To    string
	Cause error
}

// NewTransitionIsIllegalError creates a TransitionIsIllegalError without cause.
func NewTransitionIsIllegalError(from, to string) *TransitionIsIllegalError {
	return &TransitionIsIllegalError{
		From: from,
		To:   to,
	}
}

// NewTransitionIsIllegalErrorWithCause creates a TransitionIsIllegalError wrapping cause.
func NewTransitionIsIllegalErrorWithCause(from, to string, cause error) *TransitionIsIllegalError {
	return &TransitionIsIllegalError{
		From:  from,
		To:    to,
		Cause: cause,
	}
}

func (e *TransitionIsIllegalError) Error() string {
	msg := fmt.Sprintf("%s: %s -> %s", ErrTransitionIsIllegal, sanitize(e.From), sanitize(e.To))
	return withCause(msg, e.Cause)
}

func (e *TransitionIsIllegalError) Unwrap() error {
	return ErrTransitionIsIllegal
}
