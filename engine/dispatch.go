package engine

import (
	bfruntime "github.com/wippyai/bf-runtime"
	bferrors "github.com/wippyai/bf-runtime/errors"
)

// dispatch executes op against the tape and streams. A bracket always locates
// its partner, whether or not the jump is taken, so an unbalanced bracket fails
// the first time it is reached. Jumps leave pc on the matching bracket; Step
// then advances past it.
func (vm *VM) dispatch(op byte) error {
	switch op {
	case bfruntime.OpLeft:
		return vm.tape.MoveLeft()

	case bfruntime.OpRight:
		return vm.tape.MoveRight()

	case bfruntime.OpInc:
		vm.tape.Increment()

	case bfruntime.OpDec:
		vm.tape.Decrement()

	case bfruntime.OpOutput:
		vm.output.Append(vm.tape.Read())

	case bfruntime.OpInput:
		b, ok := vm.input.Pop()
		if !ok {
			switch vm.eof {
			case EOFError:
				return bferrors.InputEOF()
			case EOFKeep:
				return nil
			}
		}
		vm.tape.Write(b)

	case bfruntime.OpJumpFw:
		target, err := vm.program.MatchForward(vm.pc)
		if err != nil {
			return err
		}
		if vm.tape.Read() == 0 {
			vm.pc = target
		}

	case bfruntime.OpJumpBk:
		target, err := vm.program.MatchBackward(vm.pc)
		if err != nil {
			return err
		}
		if vm.tape.Read() != 0 {
			vm.pc = target
		}

	default:
		return bferrors.BadInput(bferrors.PhaseDispatch, op, vm.pc, int(vm.tape.Pointer()))
	}
	return nil
}
