package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/amoor/pkg/api"
	"github.com/matzehuels/amoor/pkg/cache"
	"github.com/matzehuels/amoor/pkg/pipeline"
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	addr     string
	redisURL string
	prefix   string
	noCache  bool
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080", prefix: appName + ":"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Documents are cached in Redis when --redis-url (or ` + envRedisURL + `) is set,
otherwise in the local cache directory. The server drains in-flight requests
on SIGINT or SIGTERM.`,
		Example: `  amoor serve
  amoor serve --addr 127.0.0.1:9000 --redis-url redis://localhost:6379/0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			if opts.redisURL == "" {
				opts.redisURL = os.Getenv(envRedisURL)
			}

			runner, err := c.serveRunner(ctx, opts, logger)
			if err != nil {
				return err
			}
			defer runner.Close()

			printInfo("Listening on %s", opts.addr)
			return api.ListenAndServe(ctx, opts.addr, api.NewRouter(runner, logger), logger)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", "", "Redis URL for the shared document cache")
	cmd.Flags().StringVar(&opts.prefix, "cache-prefix", opts.prefix, "key prefix in the shared cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the document cache")

	return cmd
}

// serveRunner picks the cache backend for the server. Redis keys are
// scoped by prefix so several deployments can share one instance.
func (c *CLI) serveRunner(ctx context.Context, opts serveOpts, logger *log.Logger) (*pipeline.Runner, error) {
	if opts.noCache || opts.redisURL == "" {
		return c.newRunner(opts.noCache)
	}
	rc, err := cache.NewRedisCache(ctx, opts.redisURL)
	if err != nil {
		return nil, err
	}
	logger.Info("using redis cache", "prefix", opts.prefix)
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), opts.prefix)
	return pipeline.NewRunner(rc, keyer, logger), nil
}
