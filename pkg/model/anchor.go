package model

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/amoor/pkg/errors"
	"github.com/matzehuels/amoor/pkg/geom"
)

// lineGeometry is the derived shape of one anchor line.
type lineGeometry struct {
	total  float64 // straight-line length from corner to anchor point
	mid    float64 // cumulative length at the rope/bottom-chain joint
	cosElv float64 // cosine of the elevation angle
	drop   float64 // anchor depth below the frame
}

// geometry derives the line lengths of a and rejects lines whose joints
// would not lie in order along the line.
func (a Anchor) geometry(frameDepth float64) (lineGeometry, error) {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"horizontal distance", a.Horizontal},
		{"bearing", a.Bearing},
		{"depth", a.Depth},
		{"bottom chain length", a.BottomChain},
		{"top chain length", a.TopChain},
	} {
		if err := errors.ValidateFinite(f.name, f.v); err != nil {
			return lineGeometry{}, a.invalid(err, "%s", f.name)
		}
	}
	if a.Index < 1 {
		return lineGeometry{}, a.invalidf("anchor index must be positive")
	}
	if a.Horizontal <= 0 {
		return lineGeometry{}, a.invalidf("horizontal distance must be positive, got %v", a.Horizontal)
	}
	if a.TopChain < 0 || a.BottomChain < 0 {
		return lineGeometry{}, a.invalidf("chain lengths must not be negative, got top %v, bottom %v", a.TopChain, a.BottomChain)
	}

	drop := a.Depth - frameDepth
	total := geom.Hypot(a.Horizontal, drop)
	mid := total - a.BottomChain
	if a.TopChain >= mid {
		return lineGeometry{}, a.invalidf("top chain %v and bottom chain %v leave no rope on a %.3f m line", a.TopChain, a.BottomChain, total)
	}
	return lineGeometry{
		total:  total,
		mid:    mid,
		cosElv: a.Horizontal / total,
		drop:   drop,
	}, nil
}

// offsetKey returns the joint key at cumulative length l along the line.
func (a Anchor) offsetKey(l, total float64) Key {
	return AnchorKey(a.Index, int(math.Round(total-l)))
}

// offsetLabel returns the tagname of the joint at cumulative length l: the
// anchor index plus the distance to the seabed in kilometres, rounded to
// three decimals from the unrounded distance.
func (a Anchor) offsetLabel(l, total float64) string {
	s := strconv.FormatFloat(float64(a.Index)+(total-l)/1e3, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}

func (a Anchor) invalidf(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidAnchor, "anchor %d: "+format, append([]any{a.Index}, args...)...)
}

func (a Anchor) invalid(cause error, format string, args ...any) error {
	return errors.Wrap(errors.ErrCodeInvalidAnchor, cause, "anchor %d: "+format, append([]any{a.Index}, args...)...)
}

// anchorLines adds the three joints and three segments of every anchor.
//
// Ids are assigned in two passes. The first pass creates the joints and
// collects the segments per category; the second hands out edge ids with
// the category as the outer loop and the anchor as the inner loop, so that
// ids group as all top chains, then all ropes, then all bottom chains.
// Segments keep their per-anchor creation order in the model.
func (b *builder) anchorLines(anchors []Anchor) error {
	seen := make(map[int]bool, len(anchors))
	byCategory := make([][]*Edge, len(anchorCategories))
	pending := make([]*Edge, 0, len(anchorCategories)*len(anchors))

	for _, a := range anchors {
		if seen[a.Index] {
			return a.invalidf("duplicate anchor index")
		}
		seen[a.Index] = true

		corner, ok := b.m.nodes[a.Corner]
		if !ok {
			return errors.New(errors.ErrCodeMissingKey, "anchor %d: corner node %s does not exist", a.Index, a.Corner)
		}
		line, err := a.geometry(b.grid.FrameDepth)
		if err != nil {
			return err
		}

		keys := [4]Key{a.Corner}
		for i, l := range [3]float64{a.TopChain, line.mid, line.total} {
			k := a.offsetKey(l, line.total)
			x, y := geom.Polar(l*line.cosElv, a.Bearing, corner.Pos.X, corner.Pos.Y)
			z := -l*line.drop/line.total - b.grid.FrameDepth
			pos := geom.Vec3{X: x, Y: y, Z: z}
			if err := b.addNode(k, a.offsetLabel(l, line.total), pos, l != line.total); err != nil {
				return errors.Wrap(errors.ErrCodeDuplicateKey, err, "anchor %d: joint at %.3f m collides with an existing key", a.Index, l)
			}
			keys[i+1] = k
		}

		for i, c := range anchorCategories {
			e := &Edge{
				Key:      anchorEdgeKey(a.Index, c),
				Category: c,
				From:     keys[i],
				To:       keys[i+1],
			}
			byCategory[i] = append(byCategory[i], e)
			pending = append(pending, e)
		}
	}

	for _, group := range byCategory {
		for _, e := range group {
			e.ID = b.ids.edge()
		}
	}
	for _, e := range pending {
		if err := b.addEdge(*e); err != nil {
			return err
		}
	}
	return nil
}
