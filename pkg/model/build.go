package model

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/amoor/pkg/errors"
	"github.com/matzehuels/amoor/pkg/geom"
)

const (
	// FirstFrameNode is the key of the frame joint at the grid origin.
	FirstFrameNode = 301

	// FirstFrameEdge is the running number of the first frame edge.
	FirstFrameEdge = 701

	// DrawingOffset is subtracted from a course to get the grid heading.
	DrawingOffset = 90.0
)

// HeadingFromCourse converts a course in degrees, as entered in the frame
// configuration, to the heading used to rotate the grid.
func HeadingFromCourse(course float64) float64 {
	return course - DrawingOffset
}

// Grid holds the frame parameters.
type Grid struct {
	Rows         int     // cage rows (along the y axis)
	Cols         int     // cage columns (along the x axis)
	LengthLong   float64 // spacing between grid lines along x
	LengthAcross float64 // spacing between grid lines along y
	FrameDepth   float64 // submersion depth of the frame, positive down
	Heading      float64 // rotation about the origin in degrees, see HeadingFromCourse
}

// Cages returns the number of cages in the grid.
func (g Grid) Cages() int { return g.Rows * g.Cols }

// RiggedCages returns the number of cages that get their own bridle and
// sling. With more than two rows the last row of cages shares rigging with
// its neighbours and is left out.
func (g Grid) RiggedCages() int {
	if g.Rows > 2 {
		return g.Cages() - g.Cols
	}
	return g.Cages()
}

// FrameNodes returns the number of frame joints.
func (g Grid) FrameNodes() int { return (g.Rows + 1) * (g.Cols + 1) }

// FrameEdges returns the number of frame edges.
func (g Grid) FrameEdges() int {
	return (g.Rows+1)*g.Cols + (g.Cols+1)*g.Rows
}

// Validate checks the grid parameters.
func (g Grid) Validate() error {
	if g.Rows < 1 || g.Cols < 1 {
		return errors.New(errors.ErrCodeInvalidGrid, "grid needs at least one row and one column, got %dx%d", g.Rows, g.Cols)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"length_long", g.LengthLong},
		{"length_across", g.LengthAcross},
		{"frame depth", g.FrameDepth},
		{"heading", g.Heading},
	} {
		if err := errors.ValidateFinite(f.name, f.v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidGrid, err, "grid")
		}
	}
	if g.LengthLong <= 0 || g.LengthAcross <= 0 {
		return errors.New(errors.ErrCodeInvalidGrid, "grid spacing must be positive, got %v x %v", g.LengthLong, g.LengthAcross)
	}
	return nil
}

// Anchor describes one anchor line.
type Anchor struct {
	Index       int     // anchor number, unique per table
	Corner      Key     // frame joint the line attaches to
	Horizontal  float64 // horizontal distance from corner to anchor point
	Bearing     float64 // degrees from the y axis
	Depth       float64 // anchor depth, positive down
	BottomChain float64 // length of the bottom chain
	TopChain    float64 // length of the top chain
}

// Build constructs the model for grid g and the given anchor table.
// It fails without returning a partial model if the grid or any anchor is
// invalid or references a joint that does not exist.
func Build(g Grid, anchors []Anchor) (*Model, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	b := &builder{
		grid: g,
		ids:  newCounter(),
		m:    newModel(g, anchors),
	}
	if err := b.frameNodes(); err != nil {
		return nil, err
	}
	if err := b.frameEdges(); err != nil {
		return nil, err
	}
	if err := b.rigging(CategoryBridle); err != nil {
		return nil, err
	}
	if err := b.rigging(CategorySling); err != nil {
		return nil, err
	}
	if err := b.anchorLines(anchors); err != nil {
		return nil, err
	}
	return b.m, nil
}

// counter hands out node and edge ids. Both sequences start at 1.
type counter struct {
	nextNode int
	nextEdge int
}

func newCounter() counter {
	return counter{nextNode: 1, nextEdge: 1}
}

func (c *counter) node() int {
	id := c.nextNode
	c.nextNode++
	return id
}

func (c *counter) edge() int {
	id := c.nextEdge
	c.nextEdge++
	return id
}

type builder struct {
	grid Grid
	ids  counter
	m    *Model
}

func (b *builder) addNode(k Key, label string, pos geom.Vec3, free bool) error {
	if _, dup := b.m.nodes[k]; dup {
		return errors.New(errors.ErrCodeDuplicateKey, "node %s (%s) already exists", k, k.Kind())
	}
	b.m.nodes[k] = &Node{Key: k, Label: label, Pos: pos, ID: b.ids.node(), Free: free}
	b.m.nodeOrder = append(b.m.nodeOrder, k)
	return nil
}

// addEdge records an edge with a pre-assigned id. Endpoints, when present,
// must already exist.
func (b *builder) addEdge(e Edge) error {
	if _, dup := b.m.edges[e.Key]; dup {
		return errors.New(errors.ErrCodeDuplicateKey, "edge %s already exists", e.Key)
	}
	if e.HasEnds() {
		for _, k := range []Key{e.From, e.To} {
			if _, ok := b.m.nodes[k]; !ok {
				return errors.New(errors.ErrCodeMissingKey, "edge %s references unknown node %s", e.Key, k)
			}
		}
	}
	b.m.edges[e.Key] = &e
	b.m.edgeOrder = append(b.m.edgeOrder, e.Key)
	return nil
}

// frameNodes places one joint per grid intersection, x-major.
func (b *builder) frameNodes() error {
	g := b.grid
	key := FirstFrameNode
	for i := 0; i <= g.Cols; i++ {
		x := float64(i) * g.LengthLong
		for j := 0; j <= g.Rows; j++ {
			y := float64(j) * g.LengthAcross
			xr, yr := geom.Rotate(x, y, g.Heading)
			if err := b.addNode(FrameKey(key), strconv.Itoa(key), geom.Vec3{X: xr, Y: yr, Z: -g.FrameDepth}, true); err != nil {
				return err
			}
			key++
		}
	}
	return nil
}

// frameEdges joins neighbouring frame joints. Edge numbers interleave the
// two passes: each column owns a block of 2·rows+1 numbers, the first rows
// of them vertical and the remaining rows+1 horizontal.
func (b *builder) frameEdges() error {
	g := b.grid
	perCol := g.Rows + 1

	// Vertical lines, along y within each column.
	name, node := FirstFrameEdge, FirstFrameNode
	for range g.Cols + 1 {
		for range g.Rows {
			if err := b.frameEdge(name, node, node+1); err != nil {
				return err
			}
			name++
			node++
		}
		name += perCol
		node++
	}

	// Horizontal lines, along x between adjacent columns.
	name, node = FirstFrameEdge+g.Rows, FirstFrameNode
	for range g.Cols {
		for range perCol {
			if err := b.frameEdge(name, node, node+perCol); err != nil {
				return err
			}
			name++
			node++
		}
		name += g.Rows
	}
	return nil
}

func (b *builder) frameEdge(name, from, to int) error {
	return b.addEdge(Edge{
		Key:      frameEdgeKey(name),
		Category: CategoryFrame,
		From:     FrameKey(from),
		To:       FrameKey(to),
		ID:       b.ids.edge(),
	})
}

// rigging adds one endpoint-less edge of category c per rigged cage.
func (b *builder) rigging(c Category) error {
	for i := range b.grid.RiggedCages() {
		if err := b.addEdge(Edge{
			Key:      riggingKey(i, c),
			Category: c,
			ID:       b.ids.edge(),
		}); err != nil {
			return err
		}
	}
	return nil
}

func frameEdgeKey(n int) Key {
	return NameKey(strconv.Itoa(n) + "_" + string(CategoryFrame))
}

func riggingKey(cage int, c Category) Key {
	return NameKey(CageLetter(cage) + "_" + string(c))
}

func anchorEdgeKey(index int, c Category) Key {
	return NameKey(strconv.Itoa(index) + "_" + string(c))
}

// CageLetter returns the letter naming cage i: A, B, ..., Z, AA, AB, ...
func CageLetter(i int) string {
	if i < 0 {
		panic(fmt.Sprintf("model: negative cage index %d", i))
	}
	var buf []byte
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}
	return string(buf)
}
