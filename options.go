package uwgo

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/urbanclimate/uwgo/internal/runner"
	"github.com/urbanclimate/uwgo/pkg/district"
	"github.com/urbanclimate/uwgo/pkg/logging"
	"github.com/urbanclimate/uwgo/pkg/simulation"
)

// Option is a function that configures a Workflow.
type Option func(*config) error

type config struct {
	epwPath   string
	district  *district.District
	parameter simulation.Parameter
	engine    string
	outputDir string
	name      string
	legacy    bool
	timeout   time.Duration
	clock     clockwork.Clock
	log       zerolog.Logger
}

func defaultWorkflowConfig() *config {
	return &config{
		parameter: simulation.DefaultParameter(),
		engine:    runner.DefaultEngine,
		timeout:   runner.DefaultTimeout,
		clock:     clockwork.NewRealClock(),
		log:       *logging.Default(),
	}
}

// WithEPW sets the rural EPW file to morph.
func WithEPW(path string) Option {
	return func(c *config) error {
		c.epwPath = path
		return nil
	}
}

// WithDistrict sets the district to simulate.
func WithDistrict(d *district.District) Option {
	return func(c *config) error {
		c.district = d
		return nil
	}
}

// WithDistrictFile loads the district from a JSON or YAML file.
func WithDistrictFile(path string) Option {
	return func(c *config) error {
		d, err := district.Load(path)
		if err != nil {
			return err
		}
		c.district = d
		return nil
	}
}

// WithParameter sets the simulation parameters. The default is a whole-year
// run with the climate zone estimated from the weather file.
func WithParameter(par simulation.Parameter) Option {
	return func(c *config) error {
		c.parameter = par
		return nil
	}
}

// WithParameterFile loads simulation parameters from a JSON or YAML file,
// layered over the defaults.
func WithParameterFile(path string) Option {
	return func(c *config) error {
		par, err := simulation.LoadParameter(path)
		if err != nil {
			return err
		}
		c.parameter = par
		return nil
	}
}

// WithEngine sets the engine executable name or path.
func WithEngine(path string) Option {
	return func(c *config) error {
		c.engine = path
		return nil
	}
}

// WithOutputDir sets where input files and the morphed EPW are written.
// The default is the directory of the rural EPW.
func WithOutputDir(dir string) Option {
	return func(c *config) error {
		c.outputDir = dir
		return nil
	}
}

// WithName sets the base name for written files. The default is the EPW
// file name with a "_uwg" suffix.
func WithName(name string) Option {
	return func(c *config) error {
		c.name = name
		return nil
	}
}

// WithLegacyInput also writes the legacy text input format alongside the
// JSON input.
func WithLegacyInput(enabled bool) Option {
	return func(c *config) error {
		c.legacy = enabled
		return nil
	}
}

// WithTimeout bounds the engine run.
func WithTimeout(d time.Duration) Option {
	return func(c *config) error {
		c.timeout = d
		return nil
	}
}

// WithSilent discards all log output.
func WithSilent(silent bool) Option {
	return func(c *config) error {
		if silent {
			c.log = zerolog.Nop()
		}
		return nil
	}
}

// WithLogger sets the logger used by the workflow and the engine runner.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) error {
		c.log = log
		return nil
	}
}

// WithClock injects a clock, used by tests to control time.
func WithClock(clock clockwork.Clock) Option {
	return func(c *config) error {
		c.clock = clock
		return nil
	}
}
