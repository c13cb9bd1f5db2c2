// Package pipeline provides the core model pipeline for amoor.
//
// This package implements the complete load → build → serialize pipeline
// used by the CLI and the HTTP API. By centralizing this logic, both entry
// points produce byte-identical documents for equal inputs.
//
// # Architecture
//
// The pipeline consists of three sequential stages:
//
//  1. Load: Read and validate the frame definition (TOML or YAML)
//  2. Build: Generate the model topology and geometry
//  3. Serialize: Append the model to the simulation template
//
// Serialized documents are cached by the content hash of the config and the
// template, the color seed and the indentation. Cancellation is checked between stages.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ConfigPath: "frame.toml",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = pipeline.WriteFile("model.xml", result.Document)
//
// Build only, for inspection and previews:
//
//	m, err := runner.Model(ctx, opts)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/amoor/pkg/config"
	"github.com/matzehuels/amoor/pkg/errors"
	"github.com/matzehuels/amoor/pkg/model"
	"github.com/matzehuels/amoor/pkg/render/simxml"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultSeed is the default color seed for reproducible documents.
	DefaultSeed = simxml.DefaultSeed

	// TTLModel is how long a serialized document stays cached.
	TTLModel = 7 * 24 * time.Hour

	// MaxIndent is the widest accepted indentation.
	MaxIndent = 8
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// Exactly one of ConfigPath and Config must be set.
type Options struct {
	// Config input
	ConfigPath   string `json:"config_path,omitempty"`
	Config       []byte `json:"-"`
	ConfigFormat string `json:"config_format,omitempty"` // required with Config

	// Template input; both empty selects DefaultTemplate
	TemplatePath string `json:"template_path,omitempty"`
	Template     []byte `json:"-"`

	// Serialize options
	Seed   uint64 `json:"seed,omitempty"`
	Indent int    `json:"indent,omitempty"`

	// Refresh skips the cache lookup but still stores the new document.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
	RunID  string      `json:"-"` // empty: a new uuid
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs and API responses.
	RunID string

	// Model is the built model.
	Model *model.Model

	// Document is the serialized simulation input.
	Document []byte

	// Stats summarizes the model.
	Stats model.Stats

	// CacheHit reports whether Document came from the cache.
	CacheHit bool

	// Timing records the duration of each stage.
	Timing Timing
}

// Timing contains per-stage durations.
type Timing struct {
	Load      time.Duration
	Build     time.Duration
	Serialize time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// Validate checks required fields and applies defaults.
func (o *Options) Validate() error {
	switch {
	case o.ConfigPath == "" && len(o.Config) == 0:
		return errors.New(errors.ErrCodeInvalidInput, "a config path or config data is required")
	case o.ConfigPath != "" && len(o.Config) > 0:
		return errors.New(errors.ErrCodeInvalidInput, "config path and config data are mutually exclusive")
	case len(o.Config) > 0 && o.ConfigFormat != config.FormatTOML && o.ConfigFormat != config.FormatYAML:
		return errors.New(errors.ErrCodeInvalidFormat, "config format %q (want toml or yaml)", o.ConfigFormat)
	}
	if o.TemplatePath != "" && len(o.Template) > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "template path and template data are mutually exclusive")
	}
	if o.Indent < 0 || o.Indent > MaxIndent {
		return errors.New(errors.ErrCodeInvalidInput, "indent must be between 0 and %d, got %d", MaxIndent, o.Indent)
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	return nil
}
