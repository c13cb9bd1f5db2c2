package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/amoor/pkg/errors"
	modelio "github.com/matzehuels/amoor/pkg/io"
	"github.com/matzehuels/amoor/pkg/model"
	"github.com/matzehuels/amoor/pkg/pipeline"
	"github.com/matzehuels/amoor/pkg/render/nodelink"
)

// Preview output formats.
const (
	formatSVG  = "svg"
	formatDOT  = "dot"
	formatPDF  = "pdf"
	formatPNG  = "png"
	formatJSON = "json"
)

// previewOpts holds the flags of the preview command.
type previewOpts struct {
	output   string
	format   string
	view     string
	scale    float64
	pngScale float64
	detailed bool
}

// previewCommand creates the preview command for drawing a model.
func (c *CLI) previewCommand() *cobra.Command {
	opts := previewOpts{format: formatSVG, view: string(nodelink.ViewPlan), scale: nodelink.DefaultScale, pngScale: 2}

	cmd := &cobra.Command{
		Use:   "preview <config>",
		Short: "Draw the frame and anchor lines of a model",
		Long: `Draw the frame and anchor lines of a model as a plan or side view.

Every joint is pinned at its coordinates. PDF and PNG output need
rsvg-convert (librsvg) on the PATH. The json format writes the nodes and
edges with their ids and coordinates instead of a drawing.`,
		Example: `  amoor preview frame.toml
  amoor preview frame.toml --view side --detailed -o side.svg
  amoor preview frame.yaml --format png`,
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

			output := opts.output
			if output == "" {
				output = previewPath(args[0], opts.format)
			}
			if err := errors.ValidatePath(output); err != nil {
				return err
			}

			data, err := renderPreview(ctx, m, opts)
			if err != nil {
				return err
			}
			if err := pipeline.WriteFile(output, data); err != nil {
				return err
			}
			printSuccess("Rendered %s view", opts.view)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: config name with the format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, dot, pdf, png, json")
	cmd.Flags().StringVar(&opts.view, "view", opts.view, "projection: plan, side")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "points per metre")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", opts.pngScale, "resolution multiplier for png output")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label every joint with its key and id")

	return cmd
}

// renderPreview produces the preview bytes in the requested format.
func renderPreview(ctx context.Context, m *model.Model, opts previewOpts) ([]byte, error) {
	view := nodelink.View(opts.view)
	if view != nodelink.ViewPlan && view != nodelink.ViewSide {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown view %q (want plan or side)", opts.view)
	}
	dot := nodelink.ToDOT(m, nodelink.Options{View: view, Scale: opts.scale, Detailed: opts.detailed})

	render := func(fn func() ([]byte, error)) ([]byte, error) {
		spinner := newSpinnerWithContext(ctx, "Rendering preview...")
		spinner.Start()
		defer spinner.Stop()
		return fn()
	}

	switch strings.ToLower(opts.format) {
	case formatJSON:
		var buf bytes.Buffer
		if err := modelio.WriteJSON(m, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case formatDOT:
		return []byte(dot), nil
	case formatSVG:
		return render(func() ([]byte, error) { return nodelink.RenderSVG(ctx, dot) })
	case formatPDF:
		return render(func() ([]byte, error) { return nodelink.RenderPDF(ctx, dot) })
	case formatPNG:
		return render(func() ([]byte, error) { return nodelink.RenderPNG(ctx, dot, opts.pngScale) })
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown preview format %q (want svg, dot, pdf, png or json)", opts.format)
	}
}

// previewPath derives the default output path from the config path,
// e.g. "farm/frame.toml" becomes "farm/frame.svg".
func previewPath(configPath, format string) string {
	ext := filepath.Ext(configPath)
	return strings.TrimSuffix(configPath, ext) + "." + strings.ToLower(format)
}
