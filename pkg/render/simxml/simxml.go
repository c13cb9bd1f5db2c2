package simxml

import (
	"math/rand/v2"
	"strconv"

	"github.com/beevik/etree"

	"github.com/matzehuels/amoor/pkg/errors"
	"github.com/matzehuels/amoor/pkg/geom"
	"github.com/matzehuels/amoor/pkg/model"
)

const (
	// DefaultSeed seeds the color source when Options.Colors is nil.
	DefaultSeed uint64 = 42

	sectionNodes      = 0
	sectionComponents = 2
	templateSections  = 3
)

// ColorSource yields color channel values in [0, 1).
// *rand.Rand satisfies it.
type ColorSource interface {
	Float64() float64
}

// Options configures serialization.
type Options struct {
	Colors ColorSource // nil: PCG source seeded from Seed
	Seed   uint64      // 0: DefaultSeed
	Indent int         // spaces per level for Render; 0 writes a single line
}

func (o Options) colors() ColorSource {
	if o.Colors != nil {
		return o.Colors
	}
	seed := o.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// truss is an edge with its endpoint ids resolved.
type truss struct {
	edge       model.Edge
	start, end int
}

// Populate appends every node and edge of m to doc. The document is
// inspected and every edge endpoint resolved before the first mutation, so
// an error leaves doc unchanged.
func Populate(doc *etree.Document, m *model.Model, opts Options) error {
	nodes, components, err := sections(doc)
	if err != nil {
		return err
	}
	trusses, err := resolve(m)
	if err != nil {
		return err
	}

	for _, n := range m.Nodes() {
		writeNode(nodes, n)
	}
	colors := opts.colors()
	for _, t := range trusses {
		writeTruss(components, t, colors)
	}
	return nil
}

// Render parses template, populates it with m and returns the document.
func Render(template []byte, m *model.Model, opts Options) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(template); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTemplate, err, "parse template")
	}
	if err := Populate(doc, m, opts); err != nil {
		return nil, err
	}
	if opts.Indent > 0 {
		doc.Indent(opts.Indent)
	}
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "write document")
	}
	return out, nil
}

func sections(doc *etree.Document) (nodes, components *etree.Element, err error) {
	root := doc.Root()
	if root == nil {
		return nil, nil, errors.New(errors.ErrCodeInvalidTemplate, "template has no root element")
	}
	children := root.ChildElements()
	if len(children) != templateSections {
		return nil, nil, errors.New(errors.ErrCodeInvalidTemplate,
			"template root <%s> has %d child sections, want %d", root.Tag, len(children), templateSections)
	}
	return children[sectionNodes], children[sectionComponents], nil
}

func resolve(m *model.Model) ([]truss, error) {
	edges := m.Edges()
	out := make([]truss, 0, len(edges))
	for _, e := range edges {
		t := truss{edge: e}
		if e.HasEnds() {
			from, ok := m.Node(e.From)
			if !ok {
				return nil, errors.New(errors.ErrCodeInternal, "edge %s: start node %s not in model", e.Key, e.From)
			}
			to, ok := m.Node(e.To)
			if !ok {
				return nil, errors.New(errors.ErrCodeInternal, "edge %s: end node %s not in model", e.Key, e.To)
			}
			// The tool expects lines drawn from the far end.
			t.start, t.end = to.ID, from.ID
		}
		out = append(out, t)
	}
	return out, nil
}

func writeNode(parent *etree.Element, n model.Node) {
	el := parent.CreateElement("node")
	el.CreateAttr("id", strconv.Itoa(n.ID))
	el.CreateAttr("tagname", n.Label)
	el.CreateAttr("x", geom.Format(n.Pos.X))
	el.CreateAttr("y", geom.Format(n.Pos.Y))
	el.CreateAttr("z", geom.Format(n.Pos.Z))

	translate := strconv.FormatBool(n.Free)
	dof := el.CreateElement("dof6")
	dof.CreateAttr("TranslationX", translate)
	dof.CreateAttr("TranslationY", translate)
	dof.CreateAttr("TranslationZ", translate)
	dof.CreateAttr("rotationX", "true")
	dof.CreateAttr("rotationY", "true")
	dof.CreateAttr("rotationZ", "true")
}

func writeTruss(parent *etree.Element, t truss, colors ColorSource) {
	id := strconv.Itoa(t.edge.ID)
	el := parent.CreateElement("truss")
	el.CreateAttr("id", id)
	el.CreateAttr("name", t.edge.Key.String())

	setAttrs(el.CreateElement("mooring"), DefaultMooring)
	setAttrs(el.CreateElement("extra"), DefaultExtra)
	setAttrs(el.CreateElement("loadmodel"), DefaultLoadModel)
	desc := el.CreateElement("description")
	setAttrs(desc, DefaultDescription)

	color := desc.CreateElement("color")
	color.CreateAttr("blue", geom.Format(colors.Float64()))
	color.CreateAttr("green", geom.Format(colors.Float64()))
	color.CreateAttr("red", geom.Format(colors.Float64()))

	if !t.edge.HasEnds() {
		return
	}
	elem := el.CreateElement("elements").CreateElement("element")
	elem.CreateAttr("id", id)
	elem.CreateAttr("StartNode_ID", strconv.Itoa(t.start))
	elem.CreateAttr("EndNode_ID", strconv.Itoa(t.end))
}

func setAttrs(el *etree.Element, attrs []Attr) {
	for _, a := range attrs {
		el.CreateAttr(a.Key, a.Value)
	}
}
