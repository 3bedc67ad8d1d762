package program

import (
	bfruntime "github.com/wippyai/bf-runtime"
	"github.com/wippyai/bf-runtime/errors"
)

// Filter returns a copy of src with every byte outside the instruction
// alphabet removed. Comments and whitespace in source files are dropped this way.
func Filter(src []byte) []byte {
	out := make([]byte, 0, len(src))
	for _, b := range src {
		if bfruntime.IsInstruction(b) {
			out = append(out, b)
		}
	}
	return out
}

// Validate returns a bad_input error for the first byte of src outside the
// instruction alphabet, or nil if every byte is an instruction.
func Validate(src []byte) error {
	for i, b := range src {
		if !bfruntime.IsInstruction(b) {
			return errors.BadInput(errors.PhaseLoad, b, i, 0)
		}
	}
	return nil
}
