package program

import (
	bfruntime "github.com/wippyai/bf-runtime"
	"github.com/wippyai/bf-runtime/errors"
)

// Store owns the loaded program bytes.
type Store struct {
	code []byte
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Load replaces the current program with a copy of src.
func (s *Store) Load(src []byte) {
	s.code = append([]byte(nil), src...)
}

// Loaded reports whether a non-empty program is present.
func (s *Store) Loaded() bool {
	return len(s.code) > 0
}

// Len returns the program length in bytes.
func (s *Store) Len() int {
	return len(s.code)
}

// At returns the instruction at pc. pc must be in [0, Len()).
func (s *Store) At(pc int) byte {
	return s.code[pc]
}

// Bytes returns the program. The slice must not be modified.
func (s *Store) Bytes() []byte {
	return s.code
}

// MatchForward returns the position of the ']' paired with the '[' at pc.
func (s *Store) MatchForward(pc int) (int, error) {
	depth := 0
	for addr := pc + 1; addr < len(s.code); addr++ {
		switch s.code[addr] {
		case bfruntime.OpJumpFw:
			depth++
		case bfruntime.OpJumpBk:
			if depth == 0 {
				return addr, nil
			}
			depth--
		}
	}
	return 0, errors.UnmatchedJump(pc, bfruntime.OpJumpFw)
}

// MatchBackward returns the position of the '[' paired with the ']' at pc.
func (s *Store) MatchBackward(pc int) (int, error) {
	depth := 0
	for addr := pc - 1; addr >= 0; addr-- {
		switch s.code[addr] {
		case bfruntime.OpJumpBk:
			depth++
		case bfruntime.OpJumpFw:
			if depth == 0 {
				return addr, nil
			}
			depth--
		}
	}
	return 0, errors.UnmatchedJump(pc, bfruntime.OpJumpBk)
}
