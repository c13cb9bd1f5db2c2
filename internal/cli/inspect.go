package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/amoor/pkg/geom"
	"github.com/matzehuels/amoor/pkg/model"
	"github.com/matzehuels/amoor/pkg/pipeline"
)

// inspectCommand creates the inspect command for summarizing a model.
func (c *CLI) inspectCommand() *cobra.Command {
	var anchors bool

	cmd := &cobra.Command{
		Use:   "inspect <config>",
		Short: "Print counts and the id layout of a frame model",
		Example: `  amoor inspect frame.toml
  amoor inspect frame.yaml --anchors`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner := pipeline.NewRunner(nil, nil, c.Logger)
			m, err := runner.Model(ctx, pipeline.Options{
				ConfigPath: args[0],
				Logger:     loggerFromContext(ctx),
			})
			if err != nil {
				return err
			}
			printInspect(m, anchors)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&anchors, "anchors", "a", false, "list every anchor line")

	return cmd
}

// printInspect prints the frame parameters, the id layout and optionally
// one row per anchor line.
func printInspect(m *model.Model, withAnchors bool) {
	g := m.Grid()
	s := m.Stats()

	printTitle("Frame")
	printKeyValue("grid", fmt.Sprintf("%d x %d cages", g.Rows, g.Cols))
	printKeyValue("spacing", fmt.Sprintf("%s x %s m", geom.Format(g.LengthLong), geom.Format(g.LengthAcross)))
	printKeyValue("depth", geom.Format(g.FrameDepth)+" m")
	printKeyValue("heading", geom.Format(g.Heading)+" deg")
	printKeyValue("rigged cages", fmt.Sprintf("%d of %d", s.RiggedCages, s.Cages))
	printKeyValue("total", fmt.Sprintf("%s nodes, %s edges",
		StyleNumber.Render(strconv.Itoa(m.NodeCount())),
		StyleNumber.Render(strconv.Itoa(m.EdgeCount()))))
	printNewline()

	printTable([]string{"component", "count", "ids"}, layoutRows(m))

	if withAnchors {
		printNewline()
		printTitle("Anchor lines")
		printTable([]string{"anchor", "corner", "horizontal", "bearing", "depth", "joints", "edges"}, anchorRows(m))
	}
}

// layoutRows returns one row per node kind and edge category with its count
// and id range.
func layoutRows(m *model.Model) [][]string {
	var frameIDs, anchorIDs []int
	fixed := 0
	for _, n := range m.Nodes() {
		switch n.Key.Kind() {
		case model.KindFrame:
			frameIDs = append(frameIDs, n.ID)
		case model.KindAnchor:
			anchorIDs = append(anchorIDs, n.ID)
		}
		if !n.Free {
			fixed++
		}
	}

	rows := [][]string{
		{"frame joints", strconv.Itoa(len(frameIDs)), idRange(frameIDs)},
		{"anchor joints", strconv.Itoa(len(anchorIDs)), idRange(anchorIDs)},
		{"fixed joints", strconv.Itoa(fixed), ""},
	}
	for _, c := range model.Categories {
		edges := m.EdgesOf(c)
		ids := make([]int, len(edges))
		for i, e := range edges {
			ids[i] = e.ID
		}
		rows = append(rows, []string{string(c), strconv.Itoa(len(edges)), idRange(ids)})
	}
	return rows
}

// anchorRows returns one row per anchor in table order.
func anchorRows(m *model.Model) [][]string {
	var rows [][]string
	for _, a := range m.Anchors() {
		line, ok := m.AnchorLine(a.Index)
		if !ok {
			continue
		}
		joints := make([]int, len(line.Nodes))
		for i, n := range line.Nodes {
			joints[i] = n.ID
		}
		edges := make([]int, len(line.Edges))
		for i, e := range line.Edges {
			edges[i] = e.ID
		}
		rows = append(rows, []string{
			strconv.Itoa(a.Index),
			a.Corner.String(),
			geom.Format(a.Horizontal),
			geom.Format(a.Bearing),
			geom.Format(a.Depth),
			idList(joints),
			idList(edges),
		})
	}
	return rows
}

// idRange formats ids as "first..last", or a single id, or "-" when empty.
func idRange(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}
	lo, hi := slices.Min(ids), slices.Max(ids)
	if lo == hi {
		return strconv.Itoa(lo)
	}
	return strconv.Itoa(lo) + ".." + strconv.Itoa(hi)
}

func idList(ids []int) string {
	s := ""
	for i, id := range ids {
		if i > 0 {
			s += ","
		}
		s += strconv.Itoa(id)
	}
	return s
}
