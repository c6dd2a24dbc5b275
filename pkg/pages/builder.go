package pages

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formcore/pkg/markup"
	"github.com/goliatone/go-formcore/pkg/model"
	"github.com/goliatone/go-formcore/pkg/render"
)

// Data is the per-request input merged into a page definition.
type Data struct {
	// Forms holds the state of each form keyed by form id.
	Forms map[string]model.FormState `json:"forms,omitempty" yaml:"forms,omitempty"`
	// Actions overrides the action of a form keyed by form id, e.g. to embed a
	// reset token in the path.
	Actions map[string]string `json:"actions,omitempty" yaml:"actions,omitempty"`
	// Hidden adds hidden inputs to a form keyed by form id.
	Hidden map[string]map[string]string `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	// Violations holds raw validation payloads keyed by form id. Paths such as
	// "user[email]", "/body/email" or "email" map onto the form fields;
	// anything else becomes a form-level error.
	Violations map[string]map[string][]string `json:"violations,omitempty" yaml:"violations,omitempty"`
	Flashes    []model.Flash                  `json:"flashes,omitempty" yaml:"flashes,omitempty"`
	CSRFToken  string                         `json:"-" yaml:"-"`
}

// Builder composes page definitions with a vocabulary renderer.
type Builder struct {
	renderer   render.Renderer
	translator render.Translator
	locale     string
	sources    OptionSources
}

// BuilderOption customises a Builder.
type BuilderOption func(*Builder)

// WithCopyTranslator translates page copy (titles, labels, prompts, link and
// button text) for locale. Missing keys keep the literal copy.
func WithCopyTranslator(translator render.Translator, locale string) BuilderOption {
	return func(b *Builder) {
		b.translator = translator
		b.locale = strings.TrimSpace(locale)
	}
}

// WithOptionSources resolves the options of fields that declare
// optionsFrom.
func WithOptionSources(sources OptionSources) BuilderOption {
	return func(b *Builder) {
		b.sources = sources
	}
}

// NewBuilder constructs a Builder around renderer.
func NewBuilder(renderer render.Renderer, opts ...BuilderOption) *Builder {
	b := &Builder{renderer: renderer}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Build returns the page body: header, flashes, forms and trailing links.
// Link failures abort the build and keep ErrInvalidDestination in the chain.
func (b *Builder) Build(page Page, data Data) (*markup.Node, error) {
	if b == nil || b.renderer == nil {
		return nil, fmt.Errorf("pages: builder requires a renderer")
	}

	actions, err := b.links(page.ID, page.Actions, data.CSRFToken)
	if err != nil {
		return nil, err
	}

	body := markup.Fragment()
	if page.Title != "" || page.Subtitle != "" || len(actions) > 0 {
		body.Append(b.renderer.Header(model.Header{
			Title:    b.text(page.Title),
			Subtitle: b.text(page.Subtitle),
		}, actions...))
	}

	for _, flash := range data.Flashes {
		flash.Title = b.text(flash.Title)
		flash.Message = b.text(flash.Message)
		body.Append(b.renderer.Flash(flash))
	}

	for _, form := range page.Forms {
		node, err := b.form(form, data)
		if err != nil {
			return nil, fmt.Errorf("pages: page %q: %w", page.ID, err)
		}
		body.Append(node)
	}

	links, err := b.links(page.ID, page.Links, data.CSRFToken)
	if err != nil {
		return nil, err
	}
	body.Append(links...)

	return body, nil
}

func (b *Builder) form(form FormConfig, data Data) (*markup.Node, error) {
	state := data.Forms[form.ID]
	if state.Name == "" {
		state.Name = form.Name
	}
	if state.ID == "" {
		state.ID = form.ID
	}
	if raw := data.Violations[form.ID]; len(raw) > 0 {
		state.Errors = withViolations(state.Errors, form, raw)
	}

	errs := render.NewErrorTranslator(b.translator, b.locale)
	var fields []*markup.Node
	for _, message := range errs.TranslateAll(state.Errors, "") {
		fields = append(fields, b.renderer.Error(message))
	}
	for _, cfg := range form.Fields {
		field, err := b.field(state, cfg)
		if err != nil {
			return nil, fmt.Errorf("form %q: %w", form.ID, err)
		}
		fields = append(fields, b.renderer.Input(field))
	}

	var actions []*markup.Node
	for _, action := range form.Actions {
		actions = append(actions, b.renderer.Button(
			model.Button{Type: action.Type, Attrs: action.Attrs},
			markup.Text(b.text(action.Label)),
		))
	}

	opts := model.FormOptions{
		ID:        form.ID,
		Action:    form.Action,
		Method:    form.Method,
		Multipart: form.Multipart,
		CSRFToken: data.CSRFToken,
		Hidden:    mergeMaps(form.Hidden, data.Hidden[form.ID]),
		Attrs:     form.Attrs,
	}
	if action, ok := data.Actions[form.ID]; ok && strings.TrimSpace(action) != "" {
		opts.Action = action
	}

	node := b.renderer.SimpleForm(state, opts, fields, actions)
	if form.Title == "" {
		return node, nil
	}
	return markup.Fragment(b.renderer.Header(model.Header{Title: b.text(form.Title)}), node), nil
}

func (b *Builder) field(state model.FormState, cfg FieldConfig) (model.Field, error) {
	kind, ok := model.ParseKind(cfg.Kind)
	if !ok {
		kind = model.DefaultKind
	}
	field := state.Field(cfg.Name, kind, b.text(cfg.Label))
	if cfg.ID != "" {
		field.ID = cfg.ID
	}
	field.Prompt = b.text(cfg.Prompt)
	field.Required = cfg.Required
	field.ReadOnly = cfg.ReadOnly
	field.Attrs = cfg.Attrs
	options, err := b.sources.Resolve(cfg)
	if err != nil {
		return model.Field{}, err
	}
	field.Options = options
	if cfg.Min != nil || cfg.Max != nil {
		field.Bounds = &model.Bounds{Min: cfg.Min, Max: cfg.Max}
	}
	return field, nil
}

func (b *Builder) links(pageID string, configs []LinkConfig, csrf string) ([]*markup.Node, error) {
	out := make([]*markup.Node, 0, len(configs))
	for _, cfg := range configs {
		node, err := b.renderer.Link(model.Link{
			Navigate:  cfg.Navigate,
			Href:      cfg.Href,
			Method:    cfg.Method,
			Replace:   cfg.Replace,
			CSRFToken: csrf,
			Attrs:     cfg.Attrs,
		}, markup.Text(b.text(cfg.Label)))
		if err != nil {
			return nil, fmt.Errorf("pages: page %q link %q: %w", pageID, cfg.Label, err)
		}
		out = append(out, node)
	}
	return out, nil
}

func (b *Builder) text(key string) string {
	key = strings.TrimSpace(key)
	if key == "" || b.translator == nil {
		return key
	}
	translated, err := b.translator.Translate(b.locale, key)
	if err != nil || translated == "" {
		return key
	}
	return translated
}

func withViolations(existing []model.FieldError, form FormConfig, raw map[string][]string) []model.FieldError {
	names := make([]string, 0, len(form.Fields))
	for _, field := range form.Fields {
		names = append(names, field.Name)
	}
	mapping := render.MapErrorPayload(form.Name, names, raw)

	out := make([]model.FieldError, 0, len(existing)+len(mapping.Form)+len(mapping.Fields))
	out = append(out, existing...)
	for _, message := range mapping.Form {
		out = append(out, model.FieldError{Message: model.Message(message)})
	}
	return append(out, mapping.Fields...)
}

func mergeMaps(base, overlay map[string]string) map[string]string {
	if len(overlay) == 0 {
		return base
	}
	out := make(map[string]string, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}
