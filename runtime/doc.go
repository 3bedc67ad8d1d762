// Package runtime provides bounded execution around an engine VM.
//
// The engine's Run loops until the program ends or fails, which for a
// Turing-complete language may be never. The functions here drive the same
// loop through Step and stop early on context cancellation or an exhausted
// step budget. Dispatch semantics are unchanged.
//
// # Quick Start
//
//	vm := engine.New()
//	if err := vm.Load(src); err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
//	defer cancel()
//
//	out, err := runtime.Run(ctx, vm, runtime.WithMaxSteps(10_000_000))
//	switch {
//	case errors.Is(err, bferrors.ErrStepLimit):
//	    // budget exhausted, vm still running and may be continued
//	case errors.Is(err, bferrors.ErrCanceled):
//	    // ctx done; errors.Is(err, context.DeadlineExceeded) also holds
//	}
//
// # Resuming
//
// A run stopped by either limit is left in engine.StateRunning. Continue picks
// it up from the current program counter with a fresh budget.
package runtime
