package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scoreline/pkg/errors"
	"github.com/matzehuels/scoreline/pkg/imposition"
	"github.com/matzehuels/scoreline/pkg/pipeline"
	"github.com/matzehuels/scoreline/pkg/render"
)

// defaultBase names output files when neither -o nor a layout file is given.
const defaultBase = "layout"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file (single format) or base path (multiple)
	formats []string // output formats: svg, png, pdf, json, txt
	width   float64  // canvas width in pixels
	height  float64  // canvas height in pixels
	labels  bool     // label score lines with their positions (svg)
	noCache bool     // bypass the artifact cache
}

// renderCommand creates the render command for generating previews.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		in         inputFlags
		formatsStr string
		opts       renderOpts
	)

	cmd := &cobra.Command{
		Use:   "render [layout.json]",
		Short: "Render a layout preview to SVG, PNG, PDF, JSON or text",
		Long: `Render a scaled preview of a layout.

The layout is calculated from --page, --doc and --scheme, or read from a JSON
file written by "scoreline calc --json". The summary is always printed, even
when the page is too large to draw on the canvas.`,
		Example: `  scoreline render -p 12 -d 3.625 -s trifold
  scoreline render -p 12 -d 4 -f svg,png,pdf -o brochure
  scoreline render layout.json -f pdf --width 1200`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = pipeline.ParseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if !cmd.Flags().Changed("width") {
				opts.width = c.Config.Canvas.Width
			}
			if !cmd.Flags().Changed("height") {
				opts.height = c.Config.Canvas.Height
			}
			if err := errors.ValidateCanvas(opts.width, opts.height); err != nil {
				return err
			}

			var input string
			if len(args) == 1 {
				input = args[0]
			}
			return c.runRender(cmd.Context(), input, in.options(cmd, c.Config.Defaults), &opts)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format, - for stdout) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, txt (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width in pixels (default from config)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height in pixels (default from config)")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "label score lines with their positions (svg)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "render without reading or writing the cache")

	return cmd
}

// runRender calculates (or loads) the layout, prints its summary and writes
// one file per format. A layout that cannot be drawn is reported after the
// summary.
func (c *CLI) runRender(ctx context.Context, input string, calc pipeline.Options, opts *renderOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	l, err := c.loadLayout(ctx, runner, input, calc)
	if err != nil {
		return err
	}
	printLayout(l)
	printNewline()

	prog := newProgress(c.Logger)
	spin := startSpinner(ctx, "Rendering "+strings.Join(opts.formats, ", "))
	artifacts, cached, err := runner.Render(ctx, l, pipeline.Options{
		Formats: opts.formats,
		Width:   opts.width,
		Height:  opts.height,
		Labels:  opts.labels,
		Logger:  c.Logger,
	})
	spin.stop()

	paths, werr := writeArtifacts(artifacts, basePath(opts.output, input), opts)
	if werr != nil {
		return werr
	}
	if len(paths) > 0 {
		prog.done(fmt.Sprintf("Rendered %d files", len(paths)))
		printSuccess("Rendered preview")
		for _, p := range paths {
			printFile(p)
		}
		printStats(opts.formats, cached)
	}
	return err
}

// loadLayout reads input when given, otherwise calculates from the flags.
func (c *CLI) loadLayout(ctx context.Context, runner *pipeline.Runner, input string, calc pipeline.Options) (imposition.Layout, error) {
	if input == "" {
		return runner.Calculate(ctx, calc)
	}
	c.Logger.Infof("Reading %s", input)
	return render.ReadLayoutFile(input)
}

// writeArtifacts writes each artifact and returns the paths written, in
// format order. A single format with -o uses the output path as given.
func writeArtifacts(artifacts map[string][]byte, base string, opts *renderOpts) ([]string, error) {
	formats := make([]string, 0, len(artifacts))
	for f := range artifacts {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	var paths []string
	for _, format := range formats {
		path := base + pipeline.Extension(format)
		if len(opts.formats) == 1 && opts.output != "" {
			path = opts.output
		}
		if err := writeOutput(path, artifacts[format]); err != nil {
			return paths, err
		}
		if path != "-" {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input (or uses "layout").
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		if input == "" {
			return defaultBase
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(path string, data []byte) error {
	var out io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	_, err := out.Write(data)
	return err
}
