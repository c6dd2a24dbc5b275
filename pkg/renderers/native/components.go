package native

import (
	"strings"

	"github.com/goliatone/go-formcore/pkg/markup"
	"github.com/goliatone/go-formcore/pkg/model"
	"github.com/goliatone/go-formcore/pkg/render"
)

// Error renders message as a Label wrapping its Text.
func (r *Renderer) Error(message string) *markup.Node {
	return markup.Element("Label", markup.Attrs{}.Class(r.class(render.RoleError)),
		markup.Element("Text", nil, markup.Text(message)),
	)
}

// Form renders a LiveForm. Hidden side-channel values are emitted as
// LiveHiddenField elements ahead of content.
func (r *Renderer) Form(source model.FormSource, opts model.FormOptions, content ...*markup.Node) *markup.Node {
	method := render.ResolveFormMethod(opts.Action, opts.Method, r.opts.MethodPolicy)

	attrs := markup.Attrs{}.
		Add("id", render.FormID(source, opts)).
		Add("action", strings.TrimSpace(opts.Action)).
		Add("method", method.Method)
	if opts.Multipart {
		attrs = attrs.Set("enctype", "multipart/form-data")
	}
	attrs = attrs.Class(r.class(render.RoleForm))

	form := markup.Element("LiveForm", attrs)
	for _, hidden := range render.FormHiddenFields(opts, method, r.opts) {
		form.Append(markup.Element("LiveHiddenField", markup.Attrs{}.
			Set("name", hidden.Name).
			Set("value", hidden.Value),
		))
	}
	return form.Append(content...).Merge(opts.Attrs)
}

// SimpleForm renders fields inside a Form followed by the action Section.
func (r *Renderer) SimpleForm(source model.FormSource, opts model.FormOptions, fields []*markup.Node, actions []*markup.Node) *markup.Node {
	body := markup.Element("Form", nil, fields...)
	body.Append(markup.Element("Section", markup.Attrs{}.Class(r.class(render.RoleActions)), actions...))
	return r.Form(source, opts, body)
}

// Link renders NavigationLink for in-app targets and Link for external ones.
func (r *Renderer) Link(link model.Link, content ...*markup.Node) (*markup.Node, error) {
	resolved, err := render.ResolveLink(link, r.opts.Validator())
	if err != nil {
		return nil, err
	}

	tag := "NavigationLink"
	attrs := markup.Attrs{}.Set("destination", resolved.Destination)
	switch resolved.Shape {
	case render.LinkNavigate:
		attrs = attrs.Flag("replace", resolved.Replace)
	case render.LinkHref:
		tag = "Link"
	}
	attrs = attrs.Class(r.class(render.RoleLink))

	return markup.Element(tag, attrs, content...).Merge(link.Attrs), nil
}

// Button renders LiveSubmitButton for submit buttons and Button otherwise.
func (r *Renderer) Button(button model.Button, content ...*markup.Node) *markup.Node {
	tag := "Button"
	if button.IsSubmit() {
		tag = "LiveSubmitButton"
	}
	attrs := markup.Attrs{}.Class(r.class(render.RoleButton))
	return markup.Element(tag, attrs, content...).Merge(button.Attrs)
}

func (r *Renderer) Header(header model.Header, actions ...*markup.Node) *markup.Node {
	node := markup.Element("VStack", markup.Attrs{}.
		Set("alignment", "leading").
		Class(r.class(render.RoleHeader)),
		markup.Element("Text", markup.Attrs{}.Class(r.class(render.RoleTitle)), markup.Text(header.Title)),
	)
	if subtitle := strings.TrimSpace(header.Subtitle); subtitle != "" {
		node.Append(markup.Element("Text", markup.Attrs{}.Class(r.class(render.RoleSubtitle)), markup.Text(subtitle)))
	}
	if len(actions) > 0 {
		node.Append(markup.Element("HStack", nil, actions...))
	}
	return node
}

func (r *Renderer) Flash(flash model.Flash) *markup.Node {
	message := strings.TrimSpace(flash.Message)
	if message == "" {
		return nil
	}
	kind, role := model.FlashInfo, render.RoleFlashInfo
	if strings.EqualFold(strings.TrimSpace(flash.Kind), model.FlashError) {
		kind, role = model.FlashError, render.RoleFlashError
	}

	node := markup.Element("VStack", markup.Attrs{}.
		Set("id", "flash-"+kind).
		Set("alignment", "leading").
		Class(r.class(role)),
	)
	if title := strings.TrimSpace(flash.Title); title != "" {
		node.Append(markup.Element("Text", markup.Attrs{}.Set("font", "headline"), markup.Text(title)))
	}
	return node.Append(markup.Element("Text", nil, markup.Text(message)))
}
