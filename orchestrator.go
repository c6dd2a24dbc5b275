package formcore

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formcore/pkg/orchestrator"
	"github.com/goliatone/go-formcore/pkg/pages"
	"github.com/goliatone/go-formcore/pkg/render"
)

// Request describes one page render; alias exported via the root package for
// convenience.
type Request = orchestrator.Request

// Data carries per-request form state, flashes and the CSRF token.
type Data = pages.Data

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GeneratePage renders page in the named vocabulary ("web" or "native") with
// the bundled page definitions and layouts. It is the simplest entry point for
// callers that just want a document.
func GeneratePage(ctx context.Context, page, vocabulary string, data Data, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Page:       page,
		Vocabulary: vocabulary,
		Data:       data,
	})
}

// WithTranslator passes a translator (for example an *i18n.Catalog) through to
// the orchestrator so page copy and validation errors are localised.
func WithTranslator(translator render.Translator) orchestrator.Option {
	return orchestrator.WithTranslator(translator)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices are resolved into renderer tokens.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}
