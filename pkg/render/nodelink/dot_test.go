package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/amoor/pkg/geom"
	"github.com/matzehuels/amoor/pkg/model"
)

func testModel(t *testing.T) *model.Model {
	t.Helper()
	g := model.Grid{Rows: 1, Cols: 1, LengthLong: 20, LengthAcross: 20, FrameDepth: 5}
	a := model.Anchor{Index: 1, Corner: model.FrameKey(301), Horizontal: 50, Bearing: 45, Depth: 55, BottomChain: 10, TopChain: 5}
	m, err := model.Build(g, []model.Anchor{a})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return m
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(testModel(t), Options{})

	if !strings.Contains(dot, "graph M {") {
		t.Error("ToDOT() output missing graph declaration")
	}
	if !strings.Contains(dot, `"301" [pos="0.00,0.00!"`) {
		t.Errorf("ToDOT() output missing pinned corner:\n%s", dot)
	}
	if !strings.Contains(dot, `"304" [pos="80.00,80.00!"`) {
		t.Errorf("ToDOT() output missing scaled far corner:\n%s", dot)
	}
	if strings.Contains(dot, "Hanefot") || strings.Contains(dot, "Slings") {
		t.Error("ToDOT() should not draw rigging")
	}
	if got := strings.Count(dot, " -- "); got != 7 {
		t.Errorf("ToDOT() edges = %d, want 7", got)
	}
}

func TestToDOT_SeabedPoint(t *testing.T) {
	dot := ToDOT(testModel(t), Options{})

	var line string
	for _, l := range strings.Split(dot, "\n") {
		if strings.HasPrefix(strings.TrimSpace(l), `"1.0" [`) {
			line = l
		}
	}
	if line == "" {
		t.Fatalf("ToDOT() missing seabed node:\n%s", dot)
	}
	if !strings.Contains(line, "shape=square") || !strings.Contains(line, `xlabel="1.0"`) {
		t.Errorf("seabed node not highlighted: %s", line)
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(testModel(t), Options{Detailed: true})
	if !strings.Contains(dot, `xlabel="302\nid: 2"`) {
		t.Errorf("ToDOT() detailed output missing id label:\n%s", dot)
	}
}

func TestToDOT_Scale(t *testing.T) {
	dot := ToDOT(testModel(t), Options{Scale: 1})
	if !strings.Contains(dot, `"304" [pos="20.00,20.00!"`) {
		t.Errorf("ToDOT() ignored scale:\n%s", dot)
	}
}

func TestProject(t *testing.T) {
	p := geom.Vec3{X: 1, Y: 2, Z: -3}
	tests := []struct {
		view View
		x, y float64
	}{
		{"", 1, 2},
		{ViewPlan, 1, 2},
		{ViewSide, 1, -3},
	}
	for _, tt := range tests {
		x, y := project(p, tt.view)
		if x != tt.x || y != tt.y {
			t.Errorf("project(%q) = (%v, %v), want (%v, %v)", tt.view, x, y, tt.x, tt.y)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="5pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if got := string(normalizeViewBox([]byte("<svg/>"))); got != "<svg/>" {
		t.Errorf("normalizeViewBox() without viewBox = %q", got)
	}
}
