package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/amoor/pkg/geom"
	"github.com/matzehuels/amoor/pkg/model"
	"github.com/matzehuels/amoor/pkg/render"
)

// View selects the projection of the preview.
type View string

const (
	ViewPlan View = "plan" // x right, y up
	ViewSide View = "side" // x right, z up
)

// DefaultScale is the preview scale in points per metre.
const DefaultScale = 4.0

// Options configures preview rendering.
type Options struct {
	View  View    // "": ViewPlan
	Scale float64 // points per metre; 0: DefaultScale
	// Detailed labels every joint with its key and id.
	// When false, only frame corners referenced by anchors and seabed points are labelled.
	Detailed bool
}

var categoryColors = map[model.Category]string{
	model.CategoryFrame:       "#1f4e79",
	model.CategoryTopChain:    "#7f7f7f",
	model.CategoryRope:        "#c55a11",
	model.CategoryBottomChain: "#404040",
}

// ToDOT converts a model to Graphviz DOT with every joint pinned at its
// projected position. Render it with [RenderSVG]; the neato engine keeps
// pinned positions.
//
// Rigging components carry no endpoints and are not drawn.
func ToDOT(m *model.Model, opts Options) string {
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}
	labelled := anchorJoints(m)

	var buf bytes.Buffer
	buf.WriteString("graph M {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=false;\n")
	buf.WriteString("  node [shape=point, width=0.08, fontsize=10];\n")
	buf.WriteString("  edge [penwidth=1.5];\n")
	buf.WriteString("\n")

	for _, n := range m.Nodes() {
		x, y := project(n.Pos, opts.View)
		attrs := []string{fmt.Sprintf("pos=\"%s,%s!\"", point(x*scale), point(y*scale))}
		if opts.Detailed || labelled[n.Key] {
			attrs = append(attrs, fmt.Sprintf("xlabel=%q", fmtLabel(n, opts.Detailed)))
		}
		if !n.Free {
			attrs = append(attrs, "shape=square", "width=0.12", "style=filled", "fillcolor=black")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Key.String(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range m.Edges() {
		if !e.HasEnds() {
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.From.String(), e.To.String(), strings.Join(fmtEdgeAttrs(e), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func project(p geom.Vec3, v View) (float64, float64) {
	if v == ViewSide {
		return p.X, p.Z
	}
	return p.X, p.Y
}

func point(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// anchorJoints returns the corners that carry anchor lines and the seabed
// anchor points.
func anchorJoints(m *model.Model) map[model.Key]bool {
	out := make(map[model.Key]bool)
	for _, a := range m.Anchors() {
		out[a.Corner] = true
	}
	for _, n := range m.Nodes() {
		if !n.Free {
			out[n.Key] = true
		}
	}
	return out
}

func fmtLabel(n model.Node, detailed bool) string {
	if !detailed {
		return n.Label
	}
	return fmt.Sprintf("%s\nid: %d", n.Label, n.ID)
}

func fmtEdgeAttrs(e model.Edge) []string {
	attrs := []string{fmt.Sprintf("tooltip=%q", e.Key.String())}
	if c, ok := categoryColors[e.Category]; ok {
		attrs = append(attrs, fmt.Sprintf("color=%q", c))
	}
	if e.Category == model.CategoryRope {
		attrs = append(attrs, "style=dashed")
	}
	return attrs
}

// RenderSVG renders a DOT preview to SVG using the Graphviz neato engine.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT preview as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT preview as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
