package main

import (
	"github.com/bannerforge/bannerforge/internal/banner"
	"github.com/bannerforge/bannerforge/internal/export"
	"github.com/bannerforge/bannerforge/internal/glyph"
	"github.com/bannerforge/bannerforge/internal/logger"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Logger   *logger.Logger
	Renderer *glyph.FontRenderer
	Catalog  *glyph.Catalog
	Service  *banner.Service
	Exporter *export.Exporter
}
