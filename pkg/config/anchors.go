package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/amoor/pkg/errors"
	"github.com/matzehuels/amoor/pkg/model"
)

// Anchor table columns.
const (
	colIndex = iota
	colCorner
	colHorizontal
	colBearing
	colDepth
	colUnused
	colBottomChain
	colTopChain

	anchorColumns
)

var columnNames = [anchorColumns]string{
	colIndex:       "index",
	colCorner:      "corner",
	colHorizontal:  "horizontal",
	colBearing:     "bearing",
	colDepth:       "depth",
	colUnused:      "unused",
	colBottomChain: "bottom_chain",
	colTopChain:    "top_chain",
}

func (c *File) anchors() ([]model.Anchor, error) {
	out := make([]model.Anchor, 0, len(c.Anchors))
	for i, row := range c.Anchors {
		a, err := parseRow(row)
		if err != nil {
			rowErr := &errors.RowError{Row: i + 1, Err: err}
			if a.Index != 0 {
				rowErr.Anchor = strconv.Itoa(a.Index)
			}
			if ce, ok := err.(*cellError); ok {
				rowErr.Column = columnNames[ce.col]
				rowErr.Err = ce.err
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidAnchor, rowErr, "anchors")
		}
		out = append(out, a)
	}
	return out, nil
}

type cellError struct {
	col int
	err error
}

func (e *cellError) Error() string { return fmt.Sprintf("column %s: %v", columnNames[e.col], e.err) }

// parseRow converts one positional row. On failure the returned anchor
// still carries the index when that column parsed.
func parseRow(row []any) (model.Anchor, error) {
	var a model.Anchor
	if len(row) < anchorColumns {
		return a, fmt.Errorf("has %d columns, want at least %d", len(row), anchorColumns)
	}

	index, err := integer(row[colIndex])
	if err != nil {
		return a, &cellError{colIndex, err}
	}
	a.Index = index

	corner, err := integer(row[colCorner])
	if err != nil {
		return a, &cellError{colCorner, err}
	}
	a.Corner = model.FrameKey(corner)

	fields := []struct {
		col int
		dst *float64
	}{
		{colHorizontal, &a.Horizontal},
		{colBearing, &a.Bearing},
		{colDepth, &a.Depth},
		{colBottomChain, &a.BottomChain},
		{colTopChain, &a.TopChain},
	}
	for _, f := range fields {
		v, err := number(row[f.col])
		if err != nil {
			return a, &cellError{f.col, err}
		}
		*f.dst = v
	}
	return a, nil
}

// number accepts any decoded numeric value or a numeric string.
func number(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", n)
		}
		f = p
	case nil:
		return 0, fmt.Errorf("missing value")
	default:
		return 0, fmt.Errorf("%v (%T) is not a number", v, v)
	}
	if err := errors.ValidateFinite("value", f); err != nil {
		return 0, err
	}
	return f, nil
}

func integer(v any) (int, error) {
	f, err := number(v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%v is not an integer", v)
	}
	return int(f), nil
}
