package runtime

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/bf-runtime/engine"
	bferrors "github.com/wippyai/bf-runtime/errors"
)

func load(t *testing.T, src string) *engine.VM {
	t.Helper()
	vm := engine.New()
	if err := vm.Load([]byte(src)); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return vm
}

func TestRun_Completes(t *testing.T) {
	vm := load(t, "++[>++<-]>.")
	out, err := Run(context.Background(), vm)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !bytes.Equal(out, []byte{4}) {
		t.Errorf("output = %v, want [4]", out)
	}
}

func TestRun_EngineErrorPassesThrough(t *testing.T) {
	_, err := Run(context.Background(), load(t, "<"))
	if !errors.Is(err, bferrors.ErrMemoryUnderflow) {
		t.Fatalf("err = %v, want memory_underflow", err)
	}

	_, err = Run(context.Background(), engine.New())
	if !errors.Is(err, bferrors.ErrNoProgram) {
		t.Fatalf("err = %v, want no_program", err)
	}
}

func TestRun_StepLimit(t *testing.T) {
	vm := load(t, "+[]")
	res, err := RunDetailed(context.Background(), vm, WithMaxSteps(100))
	if !errors.Is(err, bferrors.ErrStepLimit) {
		t.Fatalf("err = %v, want step_limit", err)
	}
	if res.Steps != 100 {
		t.Errorf("Steps = %d, want 100", res.Steps)
	}
	if vm.State() != engine.StateRunning {
		t.Errorf("State() = %v, want running", vm.State())
	}
}

func TestRun_StepLimitExact(t *testing.T) {
	vm := load(t, "+++.")
	out, err := Run(context.Background(), vm, WithMaxSteps(4))
	if err != nil {
		t.Fatalf("program of 4 steps should fit a budget of 4: %v", err)
	}
	if !bytes.Equal(out, []byte{3}) {
		t.Errorf("output = %v", out)
	}
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, load(t, "+"))
	if !errors.Is(err, bferrors.ErrCanceled) {
		t.Fatalf("err = %v, want canceled", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("cause should be context.Canceled")
	}
}

func TestRun_Timeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := Run(ctx, load(t, "+[]"), WithCheckInterval(64))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}

func TestContinue_AfterLimit(t *testing.T) {
	vm := load(t, "+.+.+.")
	_, err := Run(context.Background(), vm, WithMaxSteps(3))
	if !errors.Is(err, bferrors.ErrStepLimit) {
		t.Fatalf("err = %v, want step_limit", err)
	}

	out, err := Continue(context.Background(), vm)
	if err != nil {
		t.Fatalf("Continue failed: %v", err)
	}
	if !bytes.Equal(out, []byte{1, 2, 3}) {
		t.Errorf("output = %v, want [1 2 3]", out)
	}
}

func TestContinue_NotRunning(t *testing.T) {
	vm := load(t, "+.")
	out, err := Continue(context.Background(), vm)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte{1}) {
		t.Errorf("output = %v", out)
	}
}

func TestRunDetailed_Result(t *testing.T) {
	vm := load(t, ">>+.")
	res, err := RunDetailed(context.Background(), vm)
	if err != nil {
		t.Fatal(err)
	}
	if res.Steps != 4 || res.PC != 4 || res.Pointer != 2 {
		t.Errorf("result = %+v", res)
	}
}

func TestRun_Logs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	_, err := Run(context.Background(), load(t, "+[]"),
		WithMaxSteps(10),
		WithLogger(zap.New(core)),
	)
	if err == nil {
		t.Fatal("expected step limit error")
	}
	entries := logs.FilterMessage("bounded run stopped").All()
	if len(entries) != 1 {
		t.Fatalf("got %d stop records, want 1", len(entries))
	}
	if entries[0].ContextMap()["steps"] != int64(10) {
		t.Errorf("steps field = %v", entries[0].ContextMap()["steps"])
	}
}
