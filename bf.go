package bfruntime

// Instruction is a single program byte.
type Instruction = byte

// The instruction alphabet.
const (
	OpLeft   Instruction = '<'
	OpRight  Instruction = '>'
	OpInc    Instruction = '+'
	OpDec    Instruction = '-'
	OpOutput Instruction = '.'
	OpInput  Instruction = ','
	OpJumpFw Instruction = '['
	OpJumpBk Instruction = ']'
)

// Alphabet lists every recognized instruction byte.
const Alphabet = "<>+-.,[]"

// IsInstruction reports whether b belongs to the instruction alphabet.
func IsInstruction(b byte) bool {
	switch b {
	case OpLeft, OpRight, OpInc, OpDec, OpOutput, OpInput, OpJumpFw, OpJumpBk:
		return true
	}
	return false
}

// Memory is a byte tape addressed by a single movable pointer
type Memory interface {
	Read() byte
	Write(value byte)
	Increment()
	Decrement()
	MoveLeft() error
	MoveRight() error
	Pointer() uint16
	SetPointer(address uint16)
}

// MemoryViewer provides read-only access to arbitrary cells for diagnostics.
type MemoryViewer interface {
	ReadAt(address uint16) byte
	Window(start uint16, n int) []byte
}
