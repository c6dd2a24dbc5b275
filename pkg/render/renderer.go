package render

import (
	"github.com/goliatone/go-formcore/pkg/markup"
	"github.com/goliatone/go-formcore/pkg/model"
)

// Renderer maps semantic component intents onto one markup vocabulary.
// Every method is a pure function of its arguments and the renderer's
// options; only Link can fail, and only with ErrInvalidDestination.
type Renderer interface {
	// Name identifies the vocabulary in a Registry ("web", "native").
	Name() string
	// ContentType is the media type of the serialized document.
	ContentType() string
	// Syntax selects the serializer for trees this renderer produces.
	Syntax() markup.Syntax

	// Input renders one field inside its label/content frame, followed by
	// one error node per field error.
	Input(field model.Field) *markup.Node
	// Error wraps already translated text in the error container.
	Error(message string) *markup.Node
	// Form wraps content in the form element, resolving method, CSRF and
	// encoding attributes.
	Form(source model.FormSource, opts model.FormOptions, content ...*markup.Node) *markup.Node
	// SimpleForm renders fields followed by an action row inside Form.
	SimpleForm(source model.FormSource, opts model.FormOptions, fields []*markup.Node, actions []*markup.Node) *markup.Node
	// Link renders one of the three navigation shapes.
	Link(link model.Link, content ...*markup.Node) (*markup.Node, error)
	// Button renders a submit control or a plain action control.
	Button(button model.Button, content ...*markup.Node) *markup.Node
	// Header renders a title block with optional actions.
	Header(header model.Header, actions ...*markup.Node) *markup.Node
	// Flash renders a notice; an empty message yields nil.
	Flash(flash model.Flash) *markup.Node

	// With returns a copy of the renderer with options applied on top of
	// its current ones.
	With(options ...Option) Renderer
}
