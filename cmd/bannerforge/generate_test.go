package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bannerforge/bannerforge/internal/banner"
	"github.com/bannerforge/bannerforge/internal/export"
	"github.com/bannerforge/bannerforge/internal/glyph"
	"github.com/bannerforge/bannerforge/internal/logger"
	"github.com/bannerforge/bannerforge/internal/style"
)

func newTestApp(t *testing.T) *AppContext {
	t.Helper()

	log, err := logger.New(logger.Options{Level: "error", Writer: io.Discard})
	require.NoError(t, err)
	renderer, err := glyph.NewRenderer()
	require.NoError(t, err)
	service := banner.NewService(renderer, log)

	return &AppContext{
		Logger:   log,
		Renderer: renderer,
		Catalog:  glyph.NewCatalog(renderer),
		Service:  service,
		Exporter: export.New(service),
	}
}

func executeCommand(t *testing.T, app *AppContext, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd(app)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestGenerateWritesBannerToStdout(t *testing.T) {
	out, err := executeCommand(t, newTestApp(t), "generate", "HI", "--no-color")
	require.NoError(t, err)
	require.NotEmpty(t, strings.TrimSpace(out))
	require.NotContains(t, out, "\x1b")
}

func TestGenerateRejectsUnknownBorder(t *testing.T) {
	_, err := executeCommand(t, newTestApp(t), "generate", "HI", "--border", "wiggly")
	require.Error(t, err)
	require.Contains(t, err.Error(), "border")
}

func TestGenerateRejectsUnknownAlignment(t *testing.T) {
	_, err := executeCommand(t, newTestApp(t), "generate", "HI", "--align", "justified")
	require.Error(t, err)
	require.Contains(t, err.Error(), "alignment")
}

func TestGenerateRejectsUnknownTemplate(t *testing.T) {
	_, err := executeCommand(t, newTestApp(t), "generate", "HI", "--template", "nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestGenerateRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	_, err := executeCommand(t, newTestApp(t), "generate", "HI",
		"--output", filepath.Join(dir, "x.txt"), "--format", "pdf")
	require.Error(t, err)
}

func TestGenerateRequiresText(t *testing.T) {
	_, err := executeCommand(t, newTestApp(t), "generate")
	require.Error(t, err)
}

func TestGenerateFlagsReachStyle(t *testing.T) {
	original := generateCmdRunner
	t.Cleanup(func() { generateCmdRunner = original })

	var gotOpts generateOptions
	var gotStyle style.Style
	generateCmdRunner = func(app *AppContext, opts generateOptions, st style.Style, out io.Writer) error {
		gotOpts = opts
		gotStyle = st
		return nil
	}

	_, err := executeCommand(t, newTestApp(t), "generate", "BIG", "DEAL",
		"--font", "small",
		"--border", "double",
		"--padding", "2",
		"--align", "center",
		"--color", "red",
		"--width", "100",
		"--shadow")
	require.NoError(t, err)

	require.Equal(t, "BIG DEAL", gotOpts.Text)
	require.Equal(t, "small", gotStyle.Font)
	require.Equal(t, style.BorderDouble, gotStyle.Border)
	require.Equal(t, 2, gotStyle.Padding)
	require.Equal(t, style.AlignCenter, gotStyle.Alignment)
	require.Equal(t, "red", gotStyle.Color)
	require.Equal(t, 100, gotStyle.Width)
	require.True(t, gotStyle.Shadow)
}

func TestGenerateTemplateThenFlagOverride(t *testing.T) {
	original := generateCmdRunner
	t.Cleanup(func() { generateCmdRunner = original })

	var gotStyle style.Style
	generateCmdRunner = func(app *AppContext, opts generateOptions, st style.Style, out io.Writer) error {
		gotStyle = st
		return nil
	}

	_, err := executeCommand(t, newTestApp(t), "generate", "HI",
		"--template", "corporate", "--font", "big", "--no-color")
	require.NoError(t, err)

	// The flag wins over the template font; template border survives.
	require.Equal(t, "big", gotStyle.Font)
	require.Equal(t, style.BorderDouble, gotStyle.Border)
}

func TestGenerateWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "banner.json")
	_, err := executeCommand(t, newTestApp(t), "generate", "HI", "--output", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, json.Valid(data))
}

func TestGenerateWritesTextFileWithoutColorWhenDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banner.txt")
	_, err := executeCommand(t, newTestApp(t), "generate", "HI",
		"--color", "red", "--no-color", "--output", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "\x1b")
}
