package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formcore/pkg/markup"
	"github.com/goliatone/go-formcore/pkg/pages"
	"github.com/goliatone/go-formcore/pkg/render"
	"github.com/goliatone/go-formcore/pkg/render/template"
	"github.com/goliatone/go-formcore/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formcore/pkg/renderers/native"
	"github.com/goliatone/go-formcore/pkg/renderers/web"
	"github.com/goliatone/go-formcore/pkg/timezones"
)

const defaultVocabulary = web.Name

// ErrUnknownPage is returned when a request names a page the store does not
// hold.
var ErrUnknownPage = errors.New("orchestrator: unknown page")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultVocabulary overrides the vocabulary used when a request omits
// one.
func WithDefaultVocabulary(name string) Option {
	return func(o *Orchestrator) {
		o.defaultVocabulary = strings.TrimSpace(name)
	}
}

// WithDefaultLocale sets the locale used when a request omits one.
func WithDefaultLocale(locale string) Option {
	return func(o *Orchestrator) {
		o.defaultLocale = strings.TrimSpace(locale)
	}
}

// WithPageStore injects a pre-loaded page store.
func WithPageStore(store *pages.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithPagesFS supplies an fs.FS holding page definitions. Pass nil to start
// with an empty store instead of the embedded pages.
func WithPagesFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.pagesFS = fsys
		o.pagesSpecified = true
	}
}

// WithTranslator translates page copy and validation errors.
func WithTranslator(translator render.Translator) Option {
	return func(o *Orchestrator) {
		o.translator = translator
	}
}

// WithOptionSource registers a Picker option source referenced by
// optionsFrom in page definitions. A nil source removes name.
func WithOptionSource(name string, source pages.OptionSource) Option {
	return func(o *Orchestrator) {
		if o.sources == nil {
			o.sources = DefaultOptionSources()
		}
		if source == nil {
			delete(o.sources, name)
			return
		}
		o.sources[name] = source
	}
}

// DefaultOptionSources returns the option sources registered by New.
func DefaultOptionSources() pages.OptionSources {
	return pages.OptionSources{
		timezones.SourceName: timezones.DefaultOptions,
	}
}

// WithThemeSelector resolves per-request theme/variant choices into renderer
// tokens.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithLayouts injects the layout engine. Layout templates are looked up by
// vocabulary name.
func WithLayouts(layouts template.TemplateRenderer) Option {
	return func(o *Orchestrator) {
		o.layouts = layouts
		o.layoutsSpecified = true
	}
}

// WithLayoutsFS builds the layout engine from fsys. Pass nil to emit page
// bodies without a document layout.
func WithLayoutsFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.layoutsFS = fsys
		o.layoutsFSSpecified = true
	}
}

// WithRenderOptions applies renderer options (method policy, hidden field
// names, destination validator) to every request.
func WithRenderOptions(options ...render.Option) Option {
	return func(o *Orchestrator) {
		o.renderOptions = append(o.renderOptions, options...)
	}
}

// Orchestrator coordinates the pipeline from page definition to rendered
// document. It applies sensible defaults (web and native renderers, embedded
// pages and layouts) while remaining open to dependency injection.
type Orchestrator struct {
	registry           *render.Registry
	defaultVocabulary  string
	defaultLocale      string
	store              *pages.Store
	pagesFS            fs.FS
	pagesSpecified     bool
	translator         render.Translator
	sources            pages.OptionSources
	themeSelector      theme.ThemeSelector
	layouts            template.TemplateRenderer
	layoutsSpecified   bool
	layoutsFS          fs.FS
	layoutsFSSpecified bool
	renderOptions      []render.Option
	initialiseErr      error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultVocabulary: defaultVocabulary,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one page render.
type Request struct {
	// Page selects the page definition by id.
	Page string
	// Vocabulary names the renderer. Empty uses the default vocabulary.
	Vocabulary string
	// Locale selects the translation locale. Empty uses the default locale.
	Locale string
	// ThemeName and ThemeVariant are passed to the theme selector.
	ThemeName    string
	ThemeVariant string
	// Data carries form state, flashes and the CSRF token.
	Data pages.Data
	// Fragment skips the document layout.
	Fragment bool
}

// Result is a rendered page.
type Result struct {
	Page        string
	Vocabulary  string
	Locale      string
	ContentType string
	Tree        *markup.Node
	Document    []byte
}

// Generate renders the request and returns the document bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	result, err := o.Render(ctx, req)
	if err != nil {
		return nil, err
	}
	return result.Document, nil
}

// Render executes the page lookup → builder → serializer → layout sequence.
func (o *Orchestrator) Render(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}

	tree, renderer, locale, err := o.tree(req)
	if err != nil {
		return Result{}, err
	}

	body := markup.Render(tree, renderer.Syntax())
	result := Result{
		Page:        req.Page,
		Vocabulary:  renderer.Name(),
		Locale:      locale,
		ContentType: renderer.ContentType(),
		Tree:        tree,
		Document:    []byte(body),
	}
	if req.Fragment || o.layouts == nil {
		return result, nil
	}

	page, _ := o.store.Page(req.Page)
	document, err := o.layouts.RenderTemplate(renderer.Name(), map[string]any{
		"body":       body,
		"title":      o.text(locale, page.Title),
		"locale":     locale,
		"page":       page.ID,
		"vocabulary": renderer.Name(),
		"csrf_token": req.Data.CSRFToken,
	})
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render layout: %w", err)
	}
	result.Document = []byte(document)
	return result, nil
}

// Tree builds the component tree for req without serialising it.
func (o *Orchestrator) Tree(ctx context.Context, req Request) (*markup.Node, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	tree, _, _, err := o.tree(req)
	return tree, err
}

// Pages lists the available page ids.
func (o *Orchestrator) Pages() []string {
	return o.store.IDs()
}

// OptionSources returns the registered Picker option sources.
func (o *Orchestrator) OptionSources() pages.OptionSources {
	return o.sources
}

// Vocabularies lists the registered renderer names.
func (o *Orchestrator) Vocabularies() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) tree(req Request) (*markup.Node, render.Renderer, string, error) {
	if strings.TrimSpace(req.Page) == "" {
		return nil, nil, "", errors.New("orchestrator: page id is required")
	}
	page, ok := o.store.Page(req.Page)
	if !ok {
		return nil, nil, "", fmt.Errorf("%w: %q", ErrUnknownPage, req.Page)
	}

	locale := strings.TrimSpace(req.Locale)
	if locale == "" {
		locale = o.defaultLocale
	}

	renderer, err := o.rendererFor(req, locale)
	if err != nil {
		return nil, nil, "", err
	}

	builder := pages.NewBuilder(renderer,
		pages.WithCopyTranslator(o.translator, locale),
		pages.WithOptionSources(o.sources),
	)
	tree, err := builder.Build(page, req.Data)
	if err != nil {
		return nil, nil, "", fmt.Errorf("orchestrator: build page %q: %w", page.ID, err)
	}
	return tree, renderer, locale, nil
}

func (o *Orchestrator) rendererFor(req Request, locale string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	name := strings.TrimSpace(req.Vocabulary)
	if name == "" {
		name = o.defaultVocabulary
	}
	renderer, err := o.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: vocabulary %q: %w", name, err)
	}

	options := append([]render.Option(nil), o.renderOptions...)
	if o.translator != nil {
		options = append(options, render.WithTranslator(o.translator, locale))
	}
	if o.themeSelector != nil {
		selected, err := render.SelectTheme(o.themeSelector, req.ThemeName, req.ThemeVariant, renderer.Name())
		if err != nil {
			return nil, fmt.Errorf("orchestrator: %w", err)
		}
		options = append(options, render.WithTheme(selected))
	}
	if len(options) == 0 {
		return renderer, nil
	}
	return renderer.With(options...), nil
}

func (o *Orchestrator) text(locale, key string) string {
	if o.translator == nil || key == "" {
		return key
	}
	translated, err := o.translator.Translate(locale, key)
	if err != nil || translated == "" {
		return key
	}
	return translated
}

func (o *Orchestrator) applyDefaults() {
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(web.New())
		o.registry.MustRegister(native.New())
	}
	if o.defaultVocabulary == "" {
		o.defaultVocabulary = defaultVocabulary
	}
	if o.sources == nil {
		o.sources = DefaultOptionSources()
	}

	if o.store == nil {
		fsys := o.pagesFS
		if !o.pagesSpecified {
			fsys = pages.TemplatesFS()
		}
		store, err := pages.LoadFS(fsys)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load pages: %w", err)
			return
		}
		o.store = store
	}

	if o.layoutsSpecified {
		return
	}
	fsys := o.layoutsFS
	if !o.layoutsFSSpecified {
		fsys = pages.LayoutsFS()
	}
	if fsys == nil {
		return
	}
	engine, err := gotemplate.New(gotemplate.WithFS(fsys))
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: layouts: %w", err)
		return
	}
	o.layouts = engine
}
