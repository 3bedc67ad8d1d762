package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad     Phase = "load"     // program loading
	PhaseDispatch Phase = "dispatch" // instruction execution
	PhaseRuntime  Phase = "runtime"  // wrappers around a run
)

// Kind categorizes the error
type Kind string

const (
	KindBadInput        Kind = "bad_input"
	KindNoProgram       Kind = "no_program"
	KindMemoryOverflow  Kind = "memory_overflow"
	KindMemoryUnderflow Kind = "memory_underflow"
	KindInputEOF        Kind = "input_eof"
	KindUnmatchedJump   Kind = "unmatched_jump"

	// Raised only by the runtime wrappers, never by the engine itself.
	KindStepLimit Kind = "step_limit"
	KindCanceled  Kind = "canceled"
)

// Sentinels for errors.Is. They carry no phase, so they match any phase.
var (
	ErrBadInput        = &Error{Kind: KindBadInput}
	ErrNoProgram       = &Error{Kind: KindNoProgram}
	ErrMemoryOverflow  = &Error{Kind: KindMemoryOverflow}
	ErrMemoryUnderflow = &Error{Kind: KindMemoryUnderflow}
	ErrInputEOF        = &Error{Kind: KindInputEOF}
	ErrUnmatchedJump   = &Error{Kind: KindUnmatchedJump}
	ErrStepLimit       = &Error{Kind: KindStepLimit}
	ErrCanceled        = &Error{Kind: KindCanceled}
)

// Error is the structured error type used throughout the runtime
type Error struct {
	Value       any
	Cause       error
	Phase       Phase
	Kind        Kind
	Detail      string
	PC          int
	Address     int
	HasLocation bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Phase != "" {
		b.WriteByte('[')
		b.WriteString(string(e.Phase))
		b.WriteString("] ")
	}
	b.WriteString(string(e.Kind))

	if e.HasLocation {
		b.WriteString(" at pc=")
		b.WriteString(strconv.Itoa(e.PC))
		b.WriteString(" ap=")
		b.WriteString(strconv.Itoa(e.Address))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// Kinds must be equal; phases must be equal unless the target has none.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Phase != "" && t.Phase != e.Phase {
			return false
		}
		return e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// At records the program counter and address pointer
func (b *Builder) At(pc, address int) *Builder {
	b.err.PC = pc
	b.err.Address = address
	b.err.HasLocation = true
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the engine's closed kind set

// BadInput creates an invalid character error. offset is the program
// position of c; phase tells whether it was found at load or dispatch.
func BadInput(phase Phase, c byte, offset, address int) *Error {
	return &Error{
		Phase:       phase,
		Kind:        KindBadInput,
		Value:       c,
		PC:          offset,
		Address:     address,
		HasLocation: true,
		Detail:      fmt.Sprintf("invalid character encountered %q", rune(c)),
	}
}

// NoProgramLoaded creates the error returned by a run with nothing to execute
func NoProgramLoaded() *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindNoProgram,
		Detail: "no program loaded",
	}
}

// MemoryOverflow creates the error for moving past the last cell. The program
// counter is unknown at the tape level; the engine adds it with WithLocation.
func MemoryOverflow(address int) *Error {
	return &Error{
		Phase:   PhaseDispatch,
		Kind:    KindMemoryOverflow,
		Address: address,
		Detail:  "pointer moved past the last cell",
	}
}

// MemoryUnderflow creates the error for moving before the first cell. The program
// counter is unknown at the tape level; the engine adds it with WithLocation.
func MemoryUnderflow(address int) *Error {
	return &Error{
		Phase:   PhaseDispatch,
		Kind:    KindMemoryUnderflow,
		Address: address,
		Detail:  "pointer moved before the first cell",
	}
}

// InputEOF creates the error for reading from an exhausted input queue
func InputEOF() *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindInputEOF,
		Detail: "no more input left",
	}
}

// UnmatchedJump creates the error for a bracket with no partner.
// pc is the position of the bracket itself; the address pointer is left for
// the engine to fill in.
func UnmatchedJump(pc int, bracket byte) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindUnmatchedJump,
		Value:  bracket,
		PC:     pc,
		Detail: fmt.Sprintf("no matching bracket for %q", rune(bracket)),
	}
}

// Runtime package convenience constructors

// StepLimit creates the error for a run that exceeded its step budget
func StepLimit(limit int64) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindStepLimit,
		Value:  limit,
		Detail: fmt.Sprintf("step budget of %d exhausted", limit),
	}
}

// Canceled wraps a context error that stopped a run
func Canceled(cause error) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindCanceled,
		Detail: "run canceled",
		Cause:  cause,
	}
}

// WithLocation returns a copy of e positioned at pc and address.
func WithLocation(e *Error, pc, address int) *Error {
	c := *e
	c.PC = pc
	c.Address = address
	c.HasLocation = true
	return &c
}
