// Package engine provides the execution engine for the tape VM.
//
// A VM owns its program store, memory tape, address pointer, program counter
// and input queue. Output is owned by the current run and returned by Run on
// success.
//
// # Lifecycle
//
//	StateIdle     - fresh VM, or program (re)loaded, or Reset called
//	StateRunning  - between Start and the last Step of a run
//	StateHalted   - program counter reached the end of the program
//	StateFaulted  - an instruction failed; Err returns the error
//
// # Execution
//
// Run starts a fresh run at program counter 0 and loops until the program
// ends or an instruction fails. It never stops on its own otherwise; see the
// runtime package for step budgets and cancellation.
//
// Start and Step expose the same loop one instruction at a time, for
// debuggers and for wrappers that need to interleave their own checks:
//
//	if err := vm.Start(); err != nil {
//	    return err
//	}
//	for {
//	    done, err := vm.Step()
//	    if err != nil || done {
//	        break
//	    }
//	}
//
// # Dispatch
//
//	<  pointer -1           memory_underflow at cell 0
//	>  pointer +1           memory_overflow at cell 65535
//	+  cell +1 (mod 256)
//	-  cell -1 (mod 256)
//	.  append cell to output
//	,  pop input into cell  empty queue handled by the EOF policy
//	[  if cell == 0 jump to matching ]    unmatched_jump if there is none
//	]  if cell != 0 jump to matching [    unmatched_jump if there is none
//
// Any other byte fails with bad_input at dispatch time.
package engine
