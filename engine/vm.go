package engine

import (
	"errors"
	"io"

	"go.uber.org/zap"

	bferrors "github.com/wippyai/bf-runtime/errors"
	"github.com/wippyai/bf-runtime/memory"
	"github.com/wippyai/bf-runtime/program"
	"github.com/wippyai/bf-runtime/stream"
)

// VM is a single tape machine instance. It is not safe for concurrent use.
type VM struct {
	err     error
	mirror  io.Writer
	logger  *zap.Logger
	program *program.Store
	tape    *memory.Tape
	input   *stream.Input
	output  *stream.Output
	pc      int
	steps   int64
	state   State
	eof     EOFPolicy
	strict  bool
	trace   bool
}

// New creates a VM with no program, a zeroed tape, pointer and program
// counter at 0 and empty streams.
func New(opts ...Option) *VM {
	vm := &VM{
		logger:  Logger(),
		program: program.New(),
		tape:    memory.New(),
		input:   stream.NewInput(),
	}
	for _, opt := range opts {
		opt(vm)
	}
	vm.output = stream.NewOutput(vm.mirror)
	return vm
}

// Load replaces the program. The program counter and address pointer are
// left alone. With WithStrictLoad a program containing a byte outside the
// alphabet is rejected with bad_input and the previous program is kept.
func (vm *VM) Load(src []byte) error {
	if vm.strict {
		if err := program.Validate(src); err != nil {
			return err
		}
	}
	vm.program.Load(src)
	vm.state = StateIdle
	vm.err = nil
	vm.logger.Debug("program loaded", zap.Int("length", len(src)))
	return nil
}

// Feed appends data to the input queue.
func (vm *VM) Feed(data []byte) {
	vm.input.Feed(data)
}

// SetPointer overwrites the address pointer, bypassing bounds checks on
// movement. Intended for diagnostics and tests.
func (vm *VM) SetPointer(address uint16) {
	vm.tape.SetPointer(address)
}

// Run executes the loaded program from the start and returns its output.
// It returns as soon as the program ends or an instruction fails; on failure
// no output is returned.
func (vm *VM) Run() ([]byte, error) {
	if err := vm.Start(); err != nil {
		return nil, err
	}
	return vm.Continue()
}

// Continue executes from the current program counter until the run ends.
// On a VM that is not running it behaves like Run.
func (vm *VM) Continue() ([]byte, error) {
	if vm.state != StateRunning {
		return vm.Run()
	}
	for {
		done, err := vm.Step()
		if err != nil {
			return nil, err
		}
		if done {
			return vm.output.Bytes(), nil
		}
	}
}

// Start begins a new run: the program counter returns to 0 and the output is
// cleared. Tape, pointer and input queue carry over from previous runs.
// It fails with no_program if no non-empty program is loaded.
func (vm *VM) Start() error {
	if !vm.program.Loaded() {
		return bferrors.NoProgramLoaded()
	}
	vm.pc = 0
	vm.steps = 0
	vm.err = nil
	vm.output.Reset()
	vm.state = StateRunning
	vm.logger.Debug("run started",
		zap.Int("length", vm.program.Len()),
		zap.Uint16("ap", vm.tape.Pointer()),
		zap.Int("input", vm.input.Len()),
	)
	return nil
}

// Step executes one instruction and reports whether the run has ended.
// A VM in StateIdle is started first. Once halted, Step keeps returning
// true; once faulted, it keeps returning the fault.
func (vm *VM) Step() (bool, error) {
	switch vm.state {
	case StateIdle:
		if err := vm.Start(); err != nil {
			return false, err
		}
	case StateHalted:
		return true, nil
	case StateFaulted:
		return false, vm.err
	}

	op := vm.program.At(vm.pc)
	if vm.trace {
		if ce := vm.logger.Check(zap.DebugLevel, "step"); ce != nil {
			ce.Write(
				zap.Int("pc", vm.pc),
				zap.String("op", string(rune(op))),
				zap.Uint16("ap", vm.tape.Pointer()),
				zap.Uint8("cell", vm.tape.Read()),
			)
		}
	}

	if err := vm.dispatch(op); err != nil {
		return false, vm.fault(err)
	}
	vm.steps++
	vm.pc++

	if vm.pc == vm.program.Len() {
		vm.state = StateHalted
		vm.logger.Debug("run halted",
			zap.Int64("steps", vm.steps),
			zap.Int("output", vm.output.Len()),
		)
		return true, nil
	}
	return false, nil
}

// fault records err as the run's terminal error, positioned at the current
// instruction.
func (vm *VM) fault(err error) error {
	var e *bferrors.Error
	if errors.As(err, &e) && !e.HasLocation {
		err = bferrors.WithLocation(e, vm.pc, int(vm.tape.Pointer()))
	}
	vm.err = err
	vm.state = StateFaulted
	vm.logger.Debug("run faulted", zap.Int64("steps", vm.steps), zap.Error(err))
	return err
}

// Reset clears the tape, pointer, program counter, input queue and output.
// The loaded program is kept.
func (vm *VM) Reset() {
	vm.tape.Reset()
	vm.input = stream.NewInput()
	vm.output.Reset()
	vm.pc = 0
	vm.steps = 0
	vm.err = nil
	vm.state = StateIdle
}

// State returns the lifecycle state.
func (vm *VM) State() State { return vm.state }

// Err returns the error that faulted the current run, if any.
func (vm *VM) Err() error { return vm.err }

// PC returns the program counter.
func (vm *VM) PC() int { return vm.pc }

// Pointer returns the address pointer.
func (vm *VM) Pointer() uint16 { return vm.tape.Pointer() }

// Cell returns the value under the address pointer.
func (vm *VM) Cell() byte { return vm.tape.Read() }

// Steps returns the number of instructions executed in the current run.
func (vm *VM) Steps() int64 { return vm.steps }

// Memory returns the VM's tape for inspection.
func (vm *VM) Memory() *memory.Tape { return vm.tape }

// Program returns the loaded program. The slice must not be modified.
func (vm *VM) Program() []byte { return vm.program.Bytes() }

// PendingInput returns the number of bytes left in the input queue.
func (vm *VM) PendingInput() int { return vm.input.Len() }

// Output returns the output produced so far by the current run.
func (vm *VM) Output() []byte { return vm.output.Bytes() }

// OutputErr returns the first error from the WithOutput mirror, if any.
func (vm *VM) OutputErr() error { return vm.output.Err() }
