// Package banner is the composition root of the rendering pipeline. A
// Service turns (text, style) into finished banner lines: glyph rendering,
// then the layout pipeline, with a fallback font when the requested one is
// missing and a small memoizing cache for repeated renders.
package banner

import (
	stderrors "errors"
	"strings"
	"sync"

	"github.com/bannerforge/bannerforge/internal/glyph"
	"github.com/bannerforge/bannerforge/internal/layout"
	"github.com/bannerforge/bannerforge/internal/logger"
	"github.com/bannerforge/bannerforge/internal/style"
	"github.com/bannerforge/bannerforge/pkg/errors"
)

// FallbackFont is retried when the requested font is not found. It ships
// embedded, so the retry cannot miss.
const FallbackFont = style.DefaultFont

// Block is a finished banner: the composed lines plus the text and
// normalized style snapshot that produced them, for exporters that need
// more than the raw lines.
type Block struct {
	Text  string
	Style style.Style
	Lines []string
}

// String joins the banner lines for terminal output.
func (b Block) String() string {
	return strings.Join(b.Lines, "\n")
}

type cacheKey struct {
	text  string
	style style.Style
}

// Service renders banners. Safe for concurrent use.
type Service struct {
	renderer glyph.Renderer
	log      *logger.Logger

	mu    sync.Mutex
	cache map[cacheKey]Block
}

func NewService(renderer glyph.Renderer, log *logger.Logger) *Service {
	return &Service{
		renderer: renderer,
		log:      log,
		cache:    make(map[cacheKey]Block),
	}
}

// Render produces the banner for text under st, joined into a single
// string without a trailing newline.
func (s *Service) Render(text string, st style.Style) (string, error) {
	block, err := s.RenderBlock(text, st)
	if err != nil {
		return "", err
	}
	return block.String(), nil
}

// RenderBlock produces the banner for text under st. The style is
// normalized first, so equivalent styles hit the same cache entry.
func (s *Service) RenderBlock(text string, st style.Style) (Block, error) {
	st = st.Normalize()
	key := cacheKey{text: text, style: st}

	s.mu.Lock()
	cached, ok := s.cache[key]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	lines, err := s.renderGlyphs(text, st)
	if err != nil {
		return Block{}, err
	}

	block := Block{
		Text:  text,
		Style: st,
		Lines: layout.Compose(lines, st),
	}

	s.mu.Lock()
	s.cache[key] = block
	s.mu.Unlock()

	s.log.WithFields(map[string]any{
		"font":  st.Font,
		"lines": len(block.Lines),
	}).Debug("banner rendered")
	return block, nil
}

// renderGlyphs asks the renderer for the letterform block, retrying once
// with the fallback font when the requested font does not exist.
func (s *Service) renderGlyphs(text string, st style.Style) ([]string, error) {
	width := contentWidth(st)

	lines, err := s.renderer.Render(text, st.Font, width, st.Alignment)
	if err == nil {
		return lines, nil
	}

	var notFound *errors.NotFoundError
	if stderrors.As(err, &notFound) && st.Font != FallbackFont {
		s.log.WithFields(map[string]any{
			"font":     st.Font,
			"fallback": FallbackFont,
		}).Warn("font not found, falling back")
		lines, err = s.renderer.Render(text, FallbackFont, width, st.Alignment)
		if err == nil {
			return lines, nil
		}
	}

	return nil, errors.NewRenderError(st.Font, err)
}

// contentWidth derives the advisory glyph width from the banner width by
// subtracting the columns the later pipeline stages will add.
func contentWidth(st style.Style) int {
	width := st.Width - 2*st.Padding
	if st.Border != style.BorderNone {
		width -= 4
	}
	if width < 1 {
		width = 1
	}
	return width
}
