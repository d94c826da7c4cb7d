package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scoreline/pkg/config"
	"github.com/matzehuels/scoreline/pkg/errors"
	"github.com/matzehuels/scoreline/pkg/render"
)

// execute runs the CLI with an empty config and cache home.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func readLayout(t *testing.T, path string) render.LayoutJSON {
	t.Helper()
	l, err := render.ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile(%s): %v", path, err)
	}
	return render.NewLayoutJSON(l)
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != "/tmp/xdg/scoreline" {
		t.Errorf("cacheDir() = %q, want /tmp/xdg/scoreline", dir)
	}
}

func TestInputFlagsOptions(t *testing.T) {
	defaults := config.Default().Defaults

	tests := []struct {
		name string
		args []string
		page float64
		doc  float64
		sch  string
	}{
		{"defaults", nil, 12, 3.625, "bifold"},
		{"page only", []string{"--page", "26"}, 26, 3.625, "bifold"},
		{"all", []string{"-p", "11", "-d", "4", "-s", "gatefold"}, 11, 4, "gatefold"},
		{"explicit zero kept", []string{"--doc", "0"}, 12, 0, "bifold"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in inputFlags
			cmd := &cobra.Command{Use: "x", RunE: func(*cobra.Command, []string) error { return nil }}
			in.register(cmd)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}
			opts := in.options(cmd, defaults)
			if opts.PageLength != tt.page || opts.DocLength != tt.doc || opts.Scheme != tt.sch {
				t.Errorf("options = %g/%g/%s, want %g/%g/%s",
					opts.PageLength, opts.DocLength, opts.Scheme, tt.page, tt.doc, tt.sch)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "", "layout"},
		{"", "jobs/brochure.json", "jobs/brochure"},
		{"out.svg", "", "out"},
		{"out.txt", "", "out"},
		{"out", "in.json", "out"},
		{"out.backup", "", "out.backup"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestCalcJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "layout.json")
	if err := execute(t, "calc", "-p", "12", "-d", "3.625", "-s", "custom", "--offsets", "1, -1, abc, 10", "--json", "-o", out); err != nil {
		t.Fatalf("calc: %v", err)
	}

	got := readLayout(t, out)
	if got.Count != 3 {
		t.Errorf("count = %d, want 3", got.Count)
	}
	if diff := cmp.Diff([]float64{1.438, 5.188, 8.938}, got.Scores); diff != "" {
		t.Errorf("scores mismatch (-want +got):\n%s", diff)
	}
}

func TestCalcUsesConfigDefaults(t *testing.T) {
	cfgHome := t.TempDir()
	dir := filepath.Join(cfgHome, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	toml := "[defaults]\npage_length = 12\ndoc_length = 4\nscheme = \"gatefold\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_CONFIG_HOME", cfgHome)

	out := filepath.Join(t.TempDir(), "layout.json")
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"calc", "--json", "-o", out})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("calc: %v", err)
	}

	got := readLayout(t, out)
	if diff := cmp.Diff([]float64{1.938, 6.063}, got.Starts); diff != "" {
		t.Errorf("starts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{2.938, 4.938, 7.063, 9.063}, got.Scores); diff != "" {
		t.Errorf("scores mismatch (-want +got):\n%s", diff)
	}
}

func TestCalcInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"zero doc", []string{"calc", "--doc", "0"}, errors.ErrCodeInvalidInput},
		{"negative page", []string{"calc", "--page", "-12"}, errors.ErrCodeInvalidInput},
		{"unknown scheme", []string{"calc", "--scheme", "zigzag"}, errors.ErrCodeInvalidScheme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRenderWritesFormats(t *testing.T) {
	base := filepath.Join(t.TempDir(), "brochure")
	if err := execute(t, "render", "-p", "12", "-d", "4", "-s", "trifold", "-f", "svg,json,txt", "-o", base); err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, ext := range []string{".svg", ".json", ".txt"} {
		data, err := os.ReadFile(base + ext)
		if err != nil {
			t.Errorf("missing %s: %v", ext, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", ext)
		}
	}
	txt, _ := os.ReadFile(base + ".txt")
	if !strings.HasPrefix(string(txt), "Max Documents: 2\n") {
		t.Errorf("txt = %q", txt)
	}
}

func TestRenderSingleFormatOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "preview.image")
	if err := execute(t, "render", "-p", "12", "-d", "4", "-f", "png", "-o", out, "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "\x89PNG") {
		t.Error("output is not a PNG")
	}
}

func TestRenderFromLayoutFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "job.json")
	if err := execute(t, "calc", "-p", "12", "-d", "4", "--json", "-o", in); err != nil {
		t.Fatalf("calc: %v", err)
	}
	if err := execute(t, "render", in, "-f", "svg"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "job.svg")); err != nil {
		t.Errorf("job.svg not written: %v", err)
	}
}

func TestRenderDegenerateScale(t *testing.T) {
	base := filepath.Join(t.TempDir(), "huge")
	err := execute(t, "render", "-p", "1.7e308", "-d", "0.8e308", "-f", "json,svg", "--width", "1e-20", "-o", base)
	if !errors.Is(err, errors.ErrCodeDegenerateScale) {
		t.Fatalf("err = %v, want DEGENERATE_SCALE", err)
	}
	if _, err := os.Stat(base + ".json"); err != nil {
		t.Errorf("json should still be written: %v", err)
	}
	if _, err := os.Stat(base + ".svg"); err == nil {
		t.Error("svg written despite degenerate scale")
	}
}

func TestRenderInvalidFormat(t *testing.T) {
	err := execute(t, "render", "-f", "gif")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestCacheClear(t *testing.T) {
	cacheHome := t.TempDir()
	dir := filepath.Join(cacheHome, appName, "ab")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "entry.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("fan-out dir should be removed, stat err = %v", err)
	}
}
