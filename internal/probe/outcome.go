package probe

import "fmt"

// Status classifies the result of one probe trial.
type Status int

const (
	// StatusSuccess means the candidate configured the project cleanly.
	StatusSuccess Status = iota

	// StatusConfigError means the tool ran and rejected the project's build
	// description, citing a source location. This is a verdict on
	// compatibility.
	StatusConfigError

	// StatusInvocationError means the tool could not be run, crashed, or
	// failed without a parseable diagnostic. This is an environment
	// failure, not a verdict on compatibility.
	StatusInvocationError
)

// String returns the status name for display and test output.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusConfigError:
		return "config-error"
	case StatusInvocationError:
		return "invocation-error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome is the classified result of testing one candidate.
//
// For StatusConfigError, File and Line locate the rejecting statement and
// Directive names it when the diagnostic included one. ProposedVersion
// carries the version the tool itself asked for ("CMake X or higher is
// required"), when present; it is informational only and never moves the
// search bounds.
//
// For StatusInvocationError, Message describes the underlying failure.
type Outcome struct {
	Status          Status
	File            string
	Line            int
	Directive       string
	ProposedVersion string
	Message         string
}

// Success reports whether the trial succeeded.
func (o Outcome) Success() bool {
	return o.Status == StatusSuccess
}

// Reason returns a short human-readable description of a failed trial,
// or "" for a success.
func (o Outcome) Reason() string {
	switch o.Status {
	case StatusConfigError:
		if o.Directive != "" {
			return fmt.Sprintf("%s:%d (%s)", o.File, o.Line, o.Directive)
		}
		return fmt.Sprintf("%s:%d", o.File, o.Line)
	case StatusInvocationError:
		return o.Message
	default:
		return ""
	}
}
