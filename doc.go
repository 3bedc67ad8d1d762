// Package bfruntime provides a Go implementation of a minimal virtual machine
// for the eight-instruction tape language (`< > + - . , [ ]`).
//
// The VM operates on a fixed tape of 65536 byte cells with a single address
// pointer. Cells wrap modulo 256; the pointer does not wrap, and moving it off
// either end of the tape is an error.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	bfruntime/         Root package with the instruction alphabet and Memory interface
//	├── memory/        Memory tape and address pointer
//	├── program/       Program store, alphabet filtering, bracket matching
//	├── stream/        Input queue and output sequence
//	├── engine/        Execution engine: dispatch loop and single stepping
//	├── runtime/       Step budgets and context cancellation around a run
//	├── errors/        Structured error types
//	└── cmd/bf/        Command line runner and interactive debugger
//
// # Quick Start
//
// Load and run a program:
//
//	vm := engine.New()
//	if err := vm.Load([]byte(",[.,]")); err != nil {
//	    log.Fatal(err)
//	}
//	vm.Feed([]byte("hello"))
//
//	out, err := vm.Run()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s\n", out) // "hello"
//
// # Bounded Execution
//
// The language is Turing-complete and Run never gives up on its own. To bound
// a run, go through the runtime package:
//
//	out, err := runtime.Run(ctx, vm, runtime.WithMaxSteps(1_000_000))
//
// # Thread Safety
//
// A VM is NOT thread-safe and should be used by a single goroutine, or access
// must be synchronized. Separate VMs share no state.
package bfruntime
