package memory

import (
	bfruntime "github.com/wippyai/bf-runtime"
	"github.com/wippyai/bf-runtime/errors"
)

// Size is the number of cells on the tape. It equals the range of the
// 16-bit address pointer.
const Size = 1 << 16

const lastCell = Size - 1

var (
	_ bfruntime.Memory       = (*Tape)(nil)
	_ bfruntime.MemoryViewer = (*Tape)(nil)
)

// Tape is a fixed-size byte tape with a single address pointer.
type Tape struct {
	cells [Size]byte
	ptr   uint16
}

// New returns a zeroed tape with the pointer at cell 0.
func New() *Tape {
	return &Tape{}
}

// Read returns the cell under the pointer.
func (t *Tape) Read() byte {
	return t.cells[t.ptr]
}

// Write stores value in the cell under the pointer.
func (t *Tape) Write(value byte) {
	t.cells[t.ptr] = value
}

// Increment adds one to the current cell, wrapping 0xFF to 0x00.
func (t *Tape) Increment() {
	t.cells[t.ptr]++
}

// Decrement subtracts one from the current cell, wrapping 0x00 to 0xFF.
func (t *Tape) Decrement() {
	t.cells[t.ptr]--
}

// MoveLeft moves the pointer one cell down. At cell 0 it fails with a
// memory_underflow error and leaves the pointer where it is.
func (t *Tape) MoveLeft() error {
	if t.ptr == 0 {
		return errors.MemoryUnderflow(int(t.ptr))
	}
	t.ptr--
	return nil
}

// MoveRight moves the pointer one cell up. At the last cell it fails with a
// memory_overflow error and leaves the pointer where it is.
func (t *Tape) MoveRight() error {
	if t.ptr == lastCell {
		return errors.MemoryOverflow(int(t.ptr))
	}
	t.ptr++
	return nil
}

// Pointer returns the address pointer.
func (t *Tape) Pointer() uint16 {
	return t.ptr
}

// SetPointer overwrites the address pointer.
func (t *Tape) SetPointer(address uint16) {
	t.ptr = address
}

// ReadAt returns the cell at address without moving the pointer.
func (t *Tape) ReadAt(address uint16) byte {
	return t.cells[address]
}

// Window returns a copy of up to n cells starting at start. The window is
// clipped at the end of the tape.
func (t *Tape) Window(start uint16, n int) []byte {
	if n <= 0 {
		return nil
	}
	end := int(start) + n
	if end > Size {
		end = Size
	}
	out := make([]byte, end-int(start))
	copy(out, t.cells[start:end])
	return out
}

// Reset zeroes every cell and returns the pointer to cell 0.
func (t *Tape) Reset() {
	t.cells = [Size]byte{}
	t.ptr = 0
}
