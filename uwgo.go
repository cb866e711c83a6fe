// Package uwgo morphs rural EPW weather files into urban ones with the
// Urban Weather Generator. A Workflow ties together a district description,
// simulation parameters, and a rural EPW, translates them into engine input,
// and drives the external engine to produce the urban EPW.
package uwgo

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/urbanclimate/uwgo/internal/runner"
	"github.com/urbanclimate/uwgo/pkg/district"
	"github.com/urbanclimate/uwgo/pkg/epw"
	"github.com/urbanclimate/uwgo/pkg/simulation"
	"github.com/urbanclimate/uwgo/pkg/uwgio"
)

// Workflow is one district-plus-weather morphing pipeline.
type Workflow interface {
	// District returns the district being simulated.
	District() *district.District

	// Parameter returns the simulation settings.
	Parameter() simulation.Parameter

	// Weather parses and returns the rural EPW, caching the result.
	Weather() (*epw.Weather, error)

	// Translate builds the engine input document without writing anything.
	Translate() (*uwgio.Input, error)

	// WriteInputs writes the engine input JSON (and the legacy text format
	// when enabled) into the output directory.
	WriteInputs() (*Inputs, error)

	// Run writes the inputs and executes the engine, returning the path of
	// the morphed urban EPW.
	Run(ctx context.Context) (*Result, error)
}

// Inputs holds the paths of written engine input files.
type Inputs struct {
	// JSONPath is the engine input JSON.
	JSONPath string
	// LegacyPath is the legacy text input, empty unless enabled.
	LegacyPath string
}

// Result reports a completed morphing run.
type Result struct {
	Inputs
	// EPWPath is the morphed urban EPW.
	EPWPath string
	// Duration is the engine run time.
	Duration time.Duration
}

type workflow struct {
	config *config

	weatherOnce sync.Once
	weather     *epw.Weather
	weatherErr  error
}

// New creates a Workflow from the given options. A district and an EPW path
// are required.
func New(opts ...Option) (Workflow, error) {
	cfg := defaultWorkflowConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	if cfg.district == nil {
		return nil, fmt.Errorf("a district is required: use WithDistrict or WithDistrictFile")
	}
	if cfg.epwPath == "" {
		return nil, fmt.Errorf("an EPW path is required: use WithEPW")
	}
	if err := cfg.district.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.parameter.Validate(); err != nil {
		return nil, err
	}

	if cfg.name == "" {
		base := strings.TrimSuffix(filepath.Base(cfg.epwPath), filepath.Ext(cfg.epwPath))
		cfg.name = base + "_uwg"
	}
	if cfg.outputDir == "" {
		cfg.outputDir = filepath.Dir(cfg.epwPath)
	}

	return &workflow{config: cfg}, nil
}

func (w *workflow) District() *district.District { return w.config.district }

func (w *workflow) Parameter() simulation.Parameter { return w.config.parameter }

func (w *workflow) Weather() (*epw.Weather, error) {
	w.weatherOnce.Do(func() {
		w.weather, w.weatherErr = epw.Load(w.config.epwPath)
	})
	return w.weather, w.weatherErr
}

func (w *workflow) Translate() (*uwgio.Input, error) {
	weather, err := w.Weather()
	if err != nil {
		return nil, err
	}
	return uwgio.Translate(w.config.district, w.config.parameter, weather)
}

func (w *workflow) WriteInputs() (*Inputs, error) {
	in, err := w.Translate()
	if err != nil {
		return nil, err
	}

	paths := &Inputs{
		JSONPath: filepath.Join(w.config.outputDir, w.config.name+".json"),
	}
	if err := uwgio.WriteJSON(paths.JSONPath, in); err != nil {
		return nil, err
	}
	w.config.log.Debug().Str("path", paths.JSONPath).Msg("wrote engine input")

	if w.config.legacy {
		paths.LegacyPath = filepath.Join(w.config.outputDir, w.config.name+".uwg")
		if err := uwgio.WriteLegacy(paths.LegacyPath, in); err != nil {
			return nil, err
		}
		w.config.log.Debug().Str("path", paths.LegacyPath).Msg("wrote legacy input")
	}
	return paths, nil
}

func (w *workflow) Run(ctx context.Context) (*Result, error) {
	inputs, err := w.WriteInputs()
	if err != nil {
		return nil, err
	}

	mgr := runner.New(
		runner.WithEngine(w.config.engine),
		runner.WithTimeout(w.config.timeout),
		runner.WithClock(w.config.clock),
		runner.WithLogger(w.config.log),
	)
	res, err := mgr.Run(ctx, runner.Job{
		Name:      w.config.name,
		InputJSON: inputs.JSONPath,
		EPWPath:   w.config.epwPath,
		OutputDir: w.config.outputDir,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Inputs:   *inputs,
		EPWPath:  res.EPWPath,
		Duration: res.Duration,
	}, nil
}
