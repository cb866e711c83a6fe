// Package runner executes the external Urban Weather Generator engine.
// It locates the engine executable, shells out one simulation per district,
// and fans out batches across a bounded worker pool.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/urbanclimate/uwgo/pkg/errors"
	"github.com/urbanclimate/uwgo/pkg/logging"
)

// DefaultEngine is the executable name looked up on PATH when no explicit
// engine path is configured.
const DefaultEngine = "uwg"

// DefaultTimeout bounds a single engine run. A whole-year simulation at 12
// timesteps per hour completes well within this on commodity hardware.
const DefaultTimeout = 30 * time.Minute

// Job is one engine invocation: morph one EPW for one district.
type Job struct {
	// Name identifies the run; the morphed EPW is written as <Name>.epw.
	Name string
	// InputJSON is the path to the engine input produced by uwgio.
	InputJSON string
	// EPWPath is the rural EPW to morph.
	EPWPath string
	// OutputDir receives the morphed EPW.
	OutputDir string
}

// OutputEPW returns the path the morphed EPW will be written to.
func (j Job) OutputEPW() string {
	return filepath.Join(j.OutputDir, j.Name+".epw")
}

func (j Job) validate() error {
	if j.Name == "" {
		return errors.NewValidationError("name", j.Name, "job needs a name")
	}
	if _, err := os.Stat(j.InputJSON); err != nil {
		return errors.WrapIO("stat", j.InputJSON, err)
	}
	if _, err := os.Stat(j.EPWPath); err != nil {
		return errors.WrapIO("stat", j.EPWPath, err)
	}
	return nil
}

// Result reports a completed engine run.
type Result struct {
	// EPWPath is the morphed urban EPW.
	EPWPath string
	// Duration is how long the engine took.
	Duration time.Duration
}

// Manager runs engine simulations.
type Manager struct {
	engine      string
	timeout     time.Duration
	concurrency int
	clock       clockwork.Clock
	log         zerolog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithEngine sets an explicit path to the engine executable instead of
// looking it up on PATH.
func WithEngine(path string) Option {
	return func(m *Manager) { m.engine = path }
}

// WithTimeout bounds each engine run.
func WithTimeout(d time.Duration) Option {
	return func(m *Manager) { m.timeout = d }
}

// WithConcurrency caps how many engine processes RunAll keeps in flight.
func WithConcurrency(n int) Option {
	return func(m *Manager) { m.concurrency = n }
}

// WithClock injects a clock, used by tests to control time.
func WithClock(clock clockwork.Clock) Option {
	return func(m *Manager) { m.clock = clock }
}

// WithLogger sets the logger for engine runs.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// New builds a Manager with the default engine lookup, timeout, and one
// worker per CPU.
func New(opts ...Option) *Manager {
	m := &Manager{
		engine:      DefaultEngine,
		timeout:     DefaultTimeout,
		concurrency: runtime.NumCPU(),
		clock:       clockwork.NewRealClock(),
		log:         *logging.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.concurrency < 1 {
		m.concurrency = 1
	}
	return m
}

// EnginePath resolves the engine executable, returning ErrEngineNotFound
// when it cannot be located.
func (m *Manager) EnginePath() (string, error) {
	if strings.ContainsRune(m.engine, os.PathSeparator) {
		if _, err := os.Stat(m.engine); err != nil {
			return "", fmt.Errorf("%w: %s", errors.ErrEngineNotFound, m.engine)
		}
		return m.engine, nil
	}
	path, err := exec.LookPath(m.engine)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not on PATH", errors.ErrEngineNotFound, m.engine)
	}
	return path, nil
}

// Run executes one engine simulation and waits for it to finish.
func (m *Manager) Run(ctx context.Context, job Job) (*Result, error) {
	if err := job.validate(); err != nil {
		return nil, err
	}
	engine, err := m.EnginePath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(job.OutputDir, 0o755); err != nil {
		return nil, errors.WrapIO("mkdir", job.OutputDir, err)
	}

	runCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	args := []string{
		"simulate", "model", job.InputJSON, job.EPWPath,
		"--new-epw-dir", job.OutputDir,
		"--new-epw-name", job.Name + ".epw",
	}
	cmd := exec.CommandContext(runCtx, engine, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	log := m.log.With().Str("job", job.Name).Logger()
	log.Info().Str("engine", engine).Str("epw", job.EPWPath).Msg("starting simulation")

	start := m.clock.Now()
	runErr := cmd.Run()
	elapsed := m.clock.Since(start)

	if runErr != nil {
		switch {
		case runCtx.Err() == context.DeadlineExceeded:
			return nil, fmt.Errorf("%w: job %s after %s",
				errors.ErrTimeout, job.Name, m.timeout)
		case runCtx.Err() == context.Canceled:
			return nil, fmt.Errorf("%w: job %s", errors.ErrCanceled, job.Name)
		}
		exitCode := -1
		if cmd.ProcessState != nil {
			exitCode = cmd.ProcessState.ExitCode()
		}
		return nil, &errors.EngineError{
			Command:  commandLine(engine, args),
			ExitCode: exitCode,
			Stderr:   stderr.String(),
			Err:      runErr,
		}
	}

	out := job.OutputEPW()
	if _, err := os.Stat(out); err != nil {
		return nil, &errors.EngineError{
			Command: commandLine(engine, args),
			Stderr:  stderr.String(),
			Err:     fmt.Errorf("engine exited cleanly but %s was not written", out),
		}
	}

	log.Info().Dur("duration", elapsed).Str("urban_epw", out).Msg("simulation complete")
	return &Result{EPWPath: out, Duration: elapsed}, nil
}

// RunAll executes a batch of simulations across the worker pool, failing
// fast on the first error.
func (m *Manager) RunAll(ctx context.Context, jobs []Job) ([]*Result, error) {
	results := make([]*Result, len(jobs))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(m.concurrency)
	for i, job := range jobs {
		i, job := i, job
		group.Go(func() error {
			res, err := m.Run(ctx, job)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func commandLine(engine string, args []string) string {
	return engine + " " + strings.Join(args, " ")
}
