package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/amoor/pkg/errors"
	"github.com/matzehuels/amoor/pkg/pipeline"
)

// buildOpts holds the flags of the build command.
type buildOpts struct {
	template string
	seed     uint64
	indent   int
	noCache  bool
	refresh  bool
	watch    bool
	debounce time.Duration
}

// buildCommand creates the build command for generating simulation documents.
func (c *CLI) buildCommand() *cobra.Command {
	opts := buildOpts{seed: pipeline.DefaultSeed, debounce: defaultDebounce}

	cmd := &cobra.Command{
		Use:   "build <config> <output>",
		Short: "Generate the simulation document for a frame definition",
		Long: `Generate the simulation document for a frame definition.

The config is a TOML or YAML file with a frame section and an anchor table.
The model is appended to a simulation template (the built-in one unless
--template is given) and written atomically to the output path.`,
		Example: `  amoor build frame.toml model.xml
  amoor build frame.yaml model.xml --template base.xml --indent 2
  amoor build frame.toml model.xml --watch`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidatePath(args[1]); err != nil {
				return err
			}
			runner, err := c.newRunner(opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			ctx := cmd.Context()
			if err := c.runBuild(ctx, runner, args[0], args[1], opts); err != nil {
				if !opts.watch {
					return err
				}
				printError("%s", errors.UserMessage(err))
			}
			if !opts.watch {
				printNextStep("Preview the frame", "amoor preview "+args[0])
				return nil
			}
			return c.watchBuild(ctx, runner, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "simulation template (default: built-in)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "seed for component colors")
	cmd.Flags().IntVar(&opts.indent, "indent", 0, "indent the document by this many spaces (0 keeps it compact)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the document cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "rebuild even when a cached document exists")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "rebuild whenever the config or template changes")
	cmd.Flags().DurationVar(&opts.debounce, "debounce", opts.debounce, "quiet period before a watched rebuild")

	return cmd
}

// runBuild executes one pipeline run and writes the document to output.
func (c *CLI) runBuild(ctx context.Context, runner *pipeline.Runner, configPath, output string, opts buildOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	result, err := runner.Execute(ctx, pipeline.Options{
		ConfigPath:   configPath,
		TemplatePath: opts.template,
		Seed:         opts.seed,
		Indent:       opts.indent,
		Refresh:      opts.refresh,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	if err := pipeline.WriteFile(output, result.Document); err != nil {
		return err
	}
	prog.done("wrote document", "path", output, "bytes", len(result.Document), "run", result.RunID)

	printSuccess("Built model from %s", configPath)
	printStats(result.Model.NodeCount(), result.Model.EdgeCount(), result.CacheHit)
	printFile(output)
	return nil
}

// watchBuild rebuilds on every change to the config or template until ctx
// is cancelled. Failed rebuilds are reported and leave the last good
// document in place.
func (c *CLI) watchBuild(ctx context.Context, runner *pipeline.Runner, configPath, output string, opts buildOpts) error {
	files := []string{configPath}
	if opts.template != "" {
		files = append(files, opts.template)
	}
	printInfo("Watching %s (Ctrl+C to stop)", configPath)
	return watchFiles(ctx, files, opts.debounce, loggerFromContext(ctx), func() {
		printNewline()
		printInfo("Change detected, rebuilding")
		if err := c.runBuild(ctx, runner, configPath, output, opts); err != nil {
			printError("%s", errors.UserMessage(err))
			printWarning("Keeping the previous %s", output)
		}
	})
}
