// Package cli implements the scoreline command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scoreline/pkg/buildinfo"
	"github.com/matzehuels/scoreline/pkg/cache"
	"github.com/matzehuels/scoreline/pkg/config"
	"github.com/matzehuels/scoreline/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "scoreline"

	// defaultColumns is the width of the terminal preview strip.
	defaultColumns = 72
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	configPath string
}

// New creates a new CLI instance with a default logger and built-in config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "scoreline",
		Short: "Scoreline lays out documents on a print page and finds fold scores",
		Long: `Scoreline computes how many documents fit side by side on a print page,
where each one starts, and where the fold scores go for bifold, trifold,
gatefold or custom folding, and renders a scaled preview of the strip.`,
		Version:      buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/scoreline/config.toml)")

	// Register all subcommands
	root.AddCommand(c.calcCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.formCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig replaces the built-in config with the file and environment.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("loaded config", "path", c.configPath)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/scoreline/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Input Flags
// =============================================================================

// inputFlags are the calculation inputs shared by calc and render.
type inputFlags struct {
	page    float64
	doc     float64
	scheme  string
	offsets string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.page, "page", "p", 0, "page length (default from config)")
	cmd.Flags().Float64VarP(&f.doc, "doc", "d", 0, "document length (default from config)")
	cmd.Flags().StringVarP(&f.scheme, "scheme", "s", "", "fold scheme: bifold, trifold, gatefold, custom (default from config)")
	cmd.Flags().StringVar(&f.offsets, "offsets", "", "custom score offsets within a document, comma separated")
	_ = cmd.RegisterFlagCompletionFunc("scheme", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"bifold", "trifold", "gatefold", "custom"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// options merges the flags over the configured defaults. Only flags the
// user set win, so an explicit --page 0 is still rejected as invalid.
func (f *inputFlags) options(cmd *cobra.Command, d config.Defaults) pipeline.Options {
	opts := pipeline.Options{
		PageLength: d.PageLength,
		DocLength:  d.DocLength,
		Scheme:     d.Scheme,
		Offsets:    d.Offsets,
	}
	if cmd.Flags().Changed("page") {
		opts.PageLength = f.page
	}
	if cmd.Flags().Changed("doc") {
		opts.DocLength = f.doc
	}
	if cmd.Flags().Changed("scheme") {
		opts.Scheme = f.scheme
	}
	if cmd.Flags().Changed("offsets") {
		opts.Offsets = f.offsets
	}
	return opts
}
