// Package memory provides the VM's memory tape.
//
// A Tape is exactly Size byte cells plus an address pointer. Cell arithmetic
// wraps modulo 256; pointer movement is checked and fails at either end:
//
//	t := memory.New()
//	t.Decrement()          // cell 0 is now 0xFF
//	err := t.MoveLeft()    // errors.ErrMemoryUnderflow, pointer stays at 0
//
// SetPointer bypasses the movement checks and is meant for diagnostics and
// tests.
package memory
