// Package errors provides structured error types for the bf-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the program counter and address pointer at the point of
// failure, the offending byte when there is one, and an optional cause.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDispatch, errors.KindBadInput).
//		At(pc, ap).
//		Value(b).
//		Detail("invalid instruction %q", b).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MemoryUnderflow(pc, ap)
//	err := errors.UnmatchedJump(pc, '[')
//
// All errors implement the standard error interface and support errors.Is/As.
// A target with an empty Phase matches any phase, so the package sentinels
// can be used directly:
//
//	if errors.Is(err, errors.ErrMemoryUnderflow) { ... }
package errors
