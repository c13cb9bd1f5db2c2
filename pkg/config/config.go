// Package config loads moored-frame definitions from TOML or YAML files.
//
// A definition has an anchors table whose rows are positional and a [frame]
// section with the grid parameters. In TOML the anchors key must come before
// the first table header:
//
//	anchors = [
//	  # index, corner, horizontal, bearing, depth, (unused), bottom chain, top chain
//	  [1, 301, 250.0, 225.0, 80.0, 0, 27.5, 10.0],
//	]
//
//	[frame]
//	rows = 2
//	cols = 4
//	length_long = 30.0
//	length_across = 30.0
//	depth = 8.0
//	course = 90.0
//
// Columns past the eighth are ignored. Column 5 is consumed by the simulation
// tool's own load setup and is never read here.
//
// Files loaded from disk get environment variables expanded before decoding.
// In-memory input passed to [Parse] does not.
package config

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/amoor/pkg/errors"
	"github.com/matzehuels/amoor/pkg/model"
)

// Supported formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Validator is implemented by decoded values that can check themselves.
type Validator interface {
	Validate() error
}

// File is a decoded frame definition.
type File struct {
	Frame   Frame   `toml:"frame" yaml:"frame"`
	Anchors [][]any `toml:"anchors" yaml:"anchors"`
}

// Frame holds the grid parameters.
type Frame struct {
	Rows         int     `toml:"rows" yaml:"rows"`
	Cols         int     `toml:"cols" yaml:"cols"`
	LengthLong   float64 `toml:"length_long" yaml:"length_long"`
	LengthAcross float64 `toml:"length_across" yaml:"length_across"`
	Depth        float64 `toml:"depth" yaml:"depth"`
	Course       float64 `toml:"course" yaml:"course"`
}

// Validate validates the frame section.
func (f *Frame) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Rows, validation.Required, validation.Min(1)),
		validation.Field(&f.Cols, validation.Required, validation.Min(1)),
		validation.Field(&f.LengthLong, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&f.LengthAcross, validation.Required, validation.Min(0.0).Exclusive()),
	)
}

// Validate validates the frame section and every anchor row. Frame depth
// and course may take any real value, and the anchor table may be empty.
func (c *File) Validate() error {
	if err := c.Frame.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "frame")
	}
	_, err := c.anchors()
	return err
}

// Grid converts the frame section to builder input.
func (c *File) Grid() model.Grid {
	return model.Grid{
		Rows:         c.Frame.Rows,
		Cols:         c.Frame.Cols,
		LengthLong:   c.Frame.LengthLong,
		LengthAcross: c.Frame.LengthAcross,
		FrameDepth:   c.Frame.Depth,
		Heading:      model.HeadingFromCourse(c.Frame.Course),
	}
}

// AnchorTable converts the anchor table to builder input, in table order.
func (c *File) AnchorTable() ([]model.Anchor, error) {
	return c.anchors()
}

// Load reads and validates the definition at path. The decoder is chosen by
// file extension.
func Load(path string) (*File, error) {
	data, format, err := Read(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, format)
}

// Read returns the contents of path with environment variables expanded,
// and the format implied by its extension. It does not decode.
func Read(path string) ([]byte, string, error) {
	format, err := errors.ConfigFormat(path)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config file %s", path)
	}
	return []byte(os.ExpandEnv(string(data))), format, nil
}

// Parse decodes and validates an in-memory definition.
func Parse(data []byte, format string) (*File, error) {
	var c File
	if err := decode(data, format, &c); err != nil {
		return nil, err
	}
	var v Validator = &c
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func decode(data []byte, format string, c *File) error {
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), c)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode yaml")
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported config format %q (want toml or yaml)", format)
	}
	return nil
}
