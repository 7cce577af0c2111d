package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bannerforge/bannerforge/internal/banner"
	"github.com/bannerforge/bannerforge/internal/export"
	"github.com/bannerforge/bannerforge/internal/logger"
	"github.com/bannerforge/bannerforge/internal/style"
)

type generateOptions struct {
	Text       string
	Font       string
	Color      string
	Background string
	Border     string
	Padding    int
	Width      int
	Align      string
	Template   string
	Scheme     string
	Shadow     bool
	Compact    bool
	Output     string
	Format     string
	NoColor    bool
	Verbose    bool
}

var generateCmdRunner = runGenerate

func newGenerateCmd(app *AppContext, root *rootFlags) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate TEXT...",
		Short: "Render a banner for the given text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Text = strings.Join(args, " ")
			opts.Verbose = root.verbose

			st, err := buildStyle(cmd, opts)
			if err != nil {
				return err
			}

			return generateCmdRunner(app, opts, st, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.Font, "font", "f", "", "Font name")
	cmd.Flags().StringVarP(&opts.Color, "color", "c", "", "Text color (name or gradient:<a>-<b>)")
	cmd.Flags().StringVar(&opts.Background, "background", "", "Background color")
	cmd.Flags().StringVarP(&opts.Border, "border", "b", "", "Border kind")
	cmd.Flags().IntVarP(&opts.Padding, "padding", "p", 0, "Padding around the text")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Banner width (0 = terminal width)")
	cmd.Flags().StringVarP(&opts.Align, "align", "a", "", "Alignment: left, center, right")
	cmd.Flags().StringVarP(&opts.Template, "template", "t", "", "Start from a named template")
	cmd.Flags().StringVarP(&opts.Scheme, "scheme", "s", "", "Apply a color scheme")
	cmd.Flags().BoolVar(&opts.Shadow, "shadow", false, "Enable the shadow effect")
	cmd.Flags().BoolVar(&opts.Compact, "compact", false, "Drop blank glyph lines")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Output format: text, json, html, png, svg")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable ANSI colors")

	return cmd
}

// buildStyle layers template, scheme, and explicit flags, in that order.
func buildStyle(cmd *cobra.Command, opts generateOptions) (style.Style, error) {
	st := style.New()

	if opts.Template != "" {
		resolved, err := style.ResolveTemplate(opts.Template)
		if err != nil {
			return style.Style{}, err
		}
		st = resolved
	}

	if opts.Scheme != "" {
		overrides, err := style.ResolveScheme(opts.Scheme)
		if err != nil {
			return style.Style{}, err
		}
		st = st.Apply(overrides)
	}

	changed := cmd.Flags().Changed
	o := style.Overrides{}

	if changed("font") {
		o.Font = &opts.Font
	}
	if changed("color") {
		o.Color = &opts.Color
	}
	if changed("background") {
		o.BackgroundColor = &opts.Background
	}
	if changed("border") {
		kind, err := style.ParseBorderKind(opts.Border)
		if err != nil {
			return style.Style{}, err
		}
		o.Border = &kind
	}
	if changed("padding") {
		o.Padding = &opts.Padding
	}
	if changed("align") {
		align, err := style.ParseAlignment(opts.Align)
		if err != nil {
			return style.Style{}, err
		}
		o.Alignment = &align
	}
	if changed("shadow") {
		o.Shadow = &opts.Shadow
	}
	if changed("compact") {
		o.Compact = &opts.Compact
	}
	if opts.Width > 0 {
		o.Width = &opts.Width
	} else if opts.Template == "" {
		width := detectWidth()
		o.Width = &width
	}

	st = st.Apply(o)

	if opts.NoColor {
		st = st.WithoutColor()
	} else if opts.Output == "" && !changed("color") && !isatty.IsTerminal(os.Stdout.Fd()) {
		st = st.WithoutColor()
	}

	return st, nil
}

func detectWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return style.DefaultWidth
}

func runGenerate(app *AppContext, opts generateOptions, st style.Style, out io.Writer) error {
	level := "info"
	if opts.Verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return err
	}

	service := banner.NewService(app.Renderer, log)

	if opts.Output == "" {
		rendered, err := service.Render(opts.Text, st)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, rendered)
		return nil
	}

	format, err := resolveFormat(opts)
	if err != nil {
		return err
	}

	exporter := export.New(service)
	var data []byte
	if format == export.FormatText {
		data, err = exporter.Text(opts.Text, st, export.TextOptions{IncludeColors: !opts.NoColor})
	} else {
		data, err = exporter.Render(format, opts.Text, st)
	}
	if err != nil {
		return err
	}

	if err := exporter.WriteFile(opts.Output, data); err != nil {
		return err
	}

	log.WithFields(map[string]any{
		"path":   opts.Output,
		"format": string(format),
	}).Info("banner written")
	return nil
}

func resolveFormat(opts generateOptions) (export.Format, error) {
	if opts.Format != "" {
		return export.ParseFormat(opts.Format)
	}
	return export.DetectFormat(opts.Output), nil
}
