package domain

import "fmt"

// AtomicError is the base error type with context.
type AtomicError struct {
	Phase      string // "config", "load", "transform", "render", "scan", "export"
	File       string
	Index      int // 1-based test index within a file, 0 when unknown
	Message    string
	Suggestion string
	Cause      error
}

func (e *AtomicError) Error() string {
	s := fmt.Sprintf("[%s]", e.Phase)
	if e.File != "" {
		s += fmt.Sprintf(" %s", e.File)
	}
	if e.Index > 0 {
		s += fmt.Sprintf("#%d", e.Index)
	}
	s += fmt.Sprintf(": %s", e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	if e.Suggestion != "" {
		s += fmt.Sprintf(" (hint: %s)", e.Suggestion)
	}
	return s
}

func (e *AtomicError) Unwrap() error {
	return e.Cause
}

// NewError creates a new AtomicError.
func NewError(phase, file string, index int, message string, cause error) *AtomicError {
	return &AtomicError{
		Phase:   phase,
		File:    file,
		Index:   index,
		Message: message,
		Cause:   cause,
	}
}

// NewErrorWithSuggestion creates a new AtomicError carrying a remediation hint.
func NewErrorWithSuggestion(phase, file string, index int, message, suggestion string, cause error) *AtomicError {
	e := NewError(phase, file, index, message, cause)
	e.Suggestion = suggestion
	return e
}
