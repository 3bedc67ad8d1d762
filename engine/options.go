package engine

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// EOFPolicy selects what ',' does when the input queue is empty.
type EOFPolicy uint8

const (
	// EOFZero stores 0 in the current cell.
	EOFZero EOFPolicy = iota
	// EOFError fails the run with input_eof.
	EOFError
	// EOFKeep leaves the current cell unchanged.
	EOFKeep
)

func (p EOFPolicy) String() string {
	switch p {
	case EOFZero:
		return "zero"
	case EOFError:
		return "error"
	case EOFKeep:
		return "keep"
	default:
		return fmt.Sprintf("EOFPolicy(%d)", uint8(p))
	}
}

// ParseEOFPolicy converts a policy name ("zero", "error", "keep").
func ParseEOFPolicy(s string) (EOFPolicy, error) {
	switch s {
	case "zero", "":
		return EOFZero, nil
	case "error":
		return EOFError, nil
	case "keep":
		return EOFKeep, nil
	}
	return EOFZero, fmt.Errorf("unknown EOF policy %q", s)
}

// Option configures a VM.
type Option func(*VM)

// WithLogger sets the VM's logger. Defaults to the package Logger().
func WithLogger(l *zap.Logger) Option {
	return func(vm *VM) {
		if l != nil {
			vm.logger = l
		}
	}
}

// WithStrictLoad makes Load reject programs containing bytes outside the
// instruction alphabet. The default accepts anything and defers the check to
// dispatch.
func WithStrictLoad(strict bool) Option {
	return func(vm *VM) { vm.strict = strict }
}

// WithEOF sets the empty-input policy for ','. The default is EOFZero.
func WithEOF(p EOFPolicy) Option {
	return func(vm *VM) { vm.eof = p }
}

// WithOutput mirrors every output byte to w as it is produced. Run still
// returns the complete output on success. Bytes written before a failing
// instruction reach w even though Run returns no output.
func WithOutput(w io.Writer) Option {
	return func(vm *VM) { vm.mirror = w }
}

// WithTrace logs every dispatched instruction at debug level.
func WithTrace(trace bool) Option {
	return func(vm *VM) { vm.trace = trace }
}
