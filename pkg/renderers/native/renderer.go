package native

import (
	"github.com/goliatone/go-formcore/pkg/markup"
	"github.com/goliatone/go-formcore/pkg/model"
	"github.com/goliatone/go-formcore/pkg/render"
)

// Name is the vocabulary identifier used in registries and routes.
const Name = "native"

// Renderer emits declarative native-UI markup (SwiftUI-style tags) for an
// external native rendering host.
type Renderer struct {
	opts render.Options
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the native renderer with the default theme and any provided
// options applied on top.
func New(options ...render.Option) *Renderer {
	opts := render.DefaultOptions().Apply(render.WithTheme(DefaultTheme()))
	return &Renderer{opts: opts.Apply(options...)}
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/swiftui; charset=utf-8"
}

func (r *Renderer) Syntax() markup.Syntax {
	return markup.SyntaxNative
}

// Options returns a copy of the renderer options.
func (r *Renderer) Options() render.Options {
	return r.opts
}

// With returns a copy of the renderer with options applied.
func (r *Renderer) With(options ...render.Option) render.Renderer {
	return &Renderer{opts: r.opts.Apply(options...)}
}

func (r *Renderer) class(role string) string {
	return r.opts.Theme.Token(role)
}

func (r *Renderer) errorNodes(field model.Field) []*markup.Node {
	return render.ErrorNodes(r.opts.Errors, field.Errors, r.Error)
}
