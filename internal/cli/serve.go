package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/scoreline/pkg/cache"
	"github.com/matzehuels/scoreline/pkg/pipeline"
	"github.com/matzehuels/scoreline/pkg/server"
)

// serveCommand runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API over HTTP",
		Long: `Serve the layout API over HTTP.

Rendered previews are cached in Redis when [server] redis_url or
SCORELINE_REDIS_URL is set, and not cached otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := c.Config.Server
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			var store cache.Cache = cache.NewNullCache()
			if cfg.RedisURL != "" {
				spin := startSpinner(ctx, "Connecting to Redis")
				rc, err := cache.NewRedisCache(ctx, cfg.RedisURL)
				spin.stop()
				if err != nil {
					return err
				}
				store = rc
				c.Logger.Info("using redis cache", "prefix", cfg.KeyPrefix, "ttl", cfg.CacheTTL.Duration)
			}

			keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), cfg.KeyPrefix)
			runner := pipeline.NewRunner(store, keyer, c.Logger)
			runner.TTL = cfg.CacheTTL.Duration
			defer runner.Close()

			return server.New(c.Config, runner, c.Logger).ListenAndServe(ctx, cfg.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}
