package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/bannerforge/bannerforge/internal/banner"
	"github.com/bannerforge/bannerforge/internal/export"
	"github.com/bannerforge/bannerforge/internal/glyph"
	"github.com/bannerforge/bannerforge/internal/logger"
)

func main() {
	log, err := logger.New(logger.Options{Level: "info", HumanReadable: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	renderer, err := glyph.NewRenderer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load fonts: %v\n", err)
		os.Exit(1)
	}
	if err := renderer.LoadDir(userFontDir()); err != nil {
		log.Error(err, "skipping custom fonts")
	}

	service := banner.NewService(renderer, log)

	app := &AppContext{
		Logger:   log,
		Renderer: renderer,
		Catalog:  glyph.NewCatalog(renderer),
		Service:  service,
		Exporter: export.New(service),
	}

	if err := newRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func userFontDir() string {
	return filepath.Join(xdg.DataHome, "bannerforge", "fonts")
}
