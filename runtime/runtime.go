package runtime

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/bf-runtime/engine"
	"github.com/wippyai/bf-runtime/errors"
)

// DefaultCheckInterval is how many steps run between context checks.
const DefaultCheckInterval = 1024

// Machine is the part of engine.VM the runtime drives.
type Machine interface {
	Start() error
	Step() (bool, error)
	State() engine.State
	Output() []byte
	PC() int
	Pointer() uint16
}

var _ Machine = (*engine.VM)(nil)

// Config holds the limits for a bounded run.
type Config struct {
	Logger        *zap.Logger
	MaxSteps      int64 // 0 means unlimited
	CheckInterval int64
}

// Option configures a bounded run.
type Option func(*Config)

// WithMaxSteps bounds the number of instructions executed by one call.
func WithMaxSteps(n int64) Option {
	return func(c *Config) { c.MaxSteps = n }
}

// WithCheckInterval sets how many steps run between context checks.
// Values below 1 select DefaultCheckInterval.
func WithCheckInterval(n int64) Option {
	return func(c *Config) { c.CheckInterval = n }
}

// WithLogger overrides the package logger for one call.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func newConfig(opts []Option) *Config {
	cfg := &Config{Logger: Logger()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.CheckInterval < 1 {
		cfg.CheckInterval = DefaultCheckInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}

// Result describes a finished bounded run.
type Result struct {
	Output  []byte
	Steps   int64
	Elapsed time.Duration
	PC      int
	Pointer uint16
}

// Run starts a fresh run on m and drives it to completion within ctx and
// the configured step budget.
func Run(ctx context.Context, m Machine, opts ...Option) ([]byte, error) {
	res, err := RunDetailed(ctx, m, opts...)
	if err != nil {
		return nil, err
	}
	return res.Output, nil
}

// RunDetailed is Run with execution statistics. On error the Result still
// reports the steps taken and where execution stopped.
func RunDetailed(ctx context.Context, m Machine, opts ...Option) (*Result, error) {
	if err := m.Start(); err != nil {
		return &Result{PC: m.PC(), Pointer: m.Pointer()}, err
	}
	return drive(ctx, m, newConfig(opts))
}

// Continue resumes m from its current program counter. A machine that is not
// running is started first, like Run.
func Continue(ctx context.Context, m Machine, opts ...Option) ([]byte, error) {
	if m.State() != engine.StateRunning {
		return Run(ctx, m, opts...)
	}
	res, err := drive(ctx, m, newConfig(opts))
	if err != nil {
		return nil, err
	}
	return res.Output, nil
}

func drive(ctx context.Context, m Machine, cfg *Config) (*Result, error) {
	start := time.Now()
	res := &Result{}
	finish := func(err error) (*Result, error) {
		res.Elapsed = time.Since(start)
		res.PC = m.PC()
		res.Pointer = m.Pointer()
		if err != nil {
			cfg.Logger.Debug("bounded run stopped",
				zap.Int64("steps", res.Steps),
				zap.Duration("elapsed", res.Elapsed),
				zap.Error(err),
			)
			return res, err
		}
		res.Output = m.Output()
		cfg.Logger.Debug("bounded run finished",
			zap.Int64("steps", res.Steps),
			zap.Duration("elapsed", res.Elapsed),
			zap.Int("output", len(res.Output)),
		)
		return res, nil
	}

	for {
		if res.Steps%cfg.CheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return finish(errors.Canceled(err))
			}
		}
		if cfg.MaxSteps > 0 && res.Steps >= cfg.MaxSteps {
			return finish(errors.StepLimit(cfg.MaxSteps))
		}

		done, err := m.Step()
		if err != nil {
			return finish(err)
		}
		res.Steps++
		if done {
			return finish(nil)
		}
	}
}
