package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/bf-runtime/engine"
	"github.com/wippyai/bf-runtime/memory"
	"github.com/wippyai/bf-runtime/program"
	"github.com/wippyai/bf-runtime/runtime"
)

type options struct {
	file        string
	expr        string
	input       string
	eof         string
	stdin       bool
	filter      bool
	strict      bool
	verbose     bool
	trace       bool
	interactive bool
	maxSteps    int64
	pointer     uint
	timeout     time.Duration
}

func main() {
	var opts options
	flag.StringVar(&opts.file, "file", "", "Path to program source file")
	flag.StringVar(&opts.expr, "e", "", "Program source given inline")
	flag.StringVar(&opts.input, "input", "", "Input bytes fed before the run")
	flag.BoolVar(&opts.stdin, "stdin", false, "Feed all of stdin as input (default when stdin is not a terminal)")
	flag.BoolVar(&opts.filter, "filter", true, "Strip bytes outside the instruction alphabet before loading")
	flag.BoolVar(&opts.strict, "strict", false, "Reject programs containing bytes outside the instruction alphabet")
	flag.StringVar(&opts.eof, "eof", "zero", "Behavior of ',' on empty input: zero, error or keep")
	flag.Int64Var(&opts.maxSteps, "max-steps", 0, "Stop after this many instructions (0 = unlimited)")
	flag.DurationVar(&opts.timeout, "timeout", 0, "Stop after this long, e.g. 2s (0 = no timeout)")
	flag.UintVar(&opts.pointer, "pointer", 0, "Initial address pointer")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose logging to stderr")
	flag.BoolVar(&opts.trace, "trace", false, "Log every instruction (implies -v)")
	flag.BoolVar(&opts.interactive, "i", false, "Interactive debugger with TUI")
	flag.Parse()

	if opts.file == "" && opts.expr == "" && flag.NArg() > 0 {
		opts.file = flag.Arg(0)
	}
	if opts.file == "" && opts.expr == "" {
		fmt.Fprintln(os.Stderr, "Usage: bf -file <program.bf> [-input text] [-max-steps n] [-timeout d]")
		fmt.Fprintln(os.Stderr, "       bf -e '<program>'")
		fmt.Fprintln(os.Stderr, "       bf -file <program.bf> -i  (interactive debugger)")
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	log, err := newLogger(opts.verbose || opts.trace)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()
	engine.SetLogger(log)
	runtime.SetLogger(log)

	src, err := readSource(opts)
	if err != nil {
		return err
	}
	if opts.filter && !opts.strict {
		src = program.Filter(src)
	}

	eof, err := engine.ParseEOFPolicy(opts.eof)
	if err != nil {
		return err
	}
	if opts.pointer >= memory.Size {
		return fmt.Errorf("pointer %d out of range [0, %d]", opts.pointer, memory.Size-1)
	}

	if opts.interactive {
		vm := engine.New(engine.WithStrictLoad(opts.strict), engine.WithEOF(eof))
		if err := vm.Load(src); err != nil {
			return fmt.Errorf("load: %w", err)
		}
		vm.SetPointer(uint16(opts.pointer))
		vm.Feed([]byte(opts.input))
		return runInteractive(vm, displayName(opts), uint16(opts.pointer), []byte(opts.input), opts.maxSteps)
	}

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	vm := engine.New(
		engine.WithStrictLoad(opts.strict),
		engine.WithEOF(eof),
		engine.WithOutput(stdout),
		engine.WithTrace(opts.trace),
	)
	if err := vm.Load(src); err != nil {
		return fmt.Errorf("load: %w", err)
	}
	vm.SetPointer(uint16(opts.pointer))
	vm.Feed([]byte(opts.input))

	if opts.stdin || !term.IsTerminal(int(os.Stdin.Fd())) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		vm.Feed(data)
	}

	ctx := context.Background()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	res, err := runtime.RunDetailed(ctx, vm, runtime.WithMaxSteps(opts.maxSteps))
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if err := vm.OutputErr(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info("program finished",
		zap.Int64("steps", res.Steps),
		zap.Duration("elapsed", res.Elapsed),
		zap.Int("output", len(res.Output)),
	)
	return nil
}

func readSource(opts options) ([]byte, error) {
	if opts.expr != "" {
		return []byte(opts.expr), nil
	}
	data, err := os.ReadFile(opts.file)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

func displayName(opts options) string {
	if opts.file != "" {
		return opts.file
	}
	return "<inline>"
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
