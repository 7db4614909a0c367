// Package errs defines the application error kinds shared by the fetcher,
// the analyzer and the CLI.
package errs

import "fmt"

// Kind categorizes application errors.
type Kind int

const (
	// Unknown represents an unclassified error.
	Unknown Kind = iota
	// InvalidInput indicates the URL was rejected before any request was made.
	InvalidInput
	// Unreachable indicates the target could not be reached or answered with
	// an error status.
	Unreachable
	// Timeout indicates the target took too long to respond.
	Timeout
	// ParsingFailed indicates the response body could not be parsed as HTML.
	ParsingFailed
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case Unreachable:
		return "unreachable"
	case Timeout:
		return "timeout"
	case ParsingFailed:
		return "parsing_failed"
	default:
		return "unknown"
	}
}

// AppError carries a category, the URL involved, a user message and the
// original cause.
type AppError struct {
	Kind           Kind
	URL            string
	UpstreamStatus int // HTTP status code returned by the target
	Message        string
	Cause          error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}
