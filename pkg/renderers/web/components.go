package web

import (
	"strings"

	"github.com/goliatone/go-formcore/pkg/markup"
	"github.com/goliatone/go-formcore/pkg/model"
	"github.com/goliatone/go-formcore/pkg/render"
)

// Error wraps message in the error paragraph.
func (r *Renderer) Error(message string) *markup.Node {
	return markup.Element("p", markup.Attrs{}.Class(r.class(render.RoleError)), markup.Text(message))
}

// Form renders the form element with its hidden side-channel inputs ahead
// of content.
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

	form := markup.Element("form", attrs)
	for _, hidden := range render.FormHiddenFields(opts, method, r.opts) {
		form.Append(markup.Element("input", markup.Attrs{}.
			Set("type", "hidden").
			Set("name", hidden.Name).
			Set("value", hidden.Value),
		))
	}
	return form.Append(content...).Merge(opts.Attrs)
}

// SimpleForm renders fields followed by the action row.
func (r *Renderer) SimpleForm(source model.FormSource, opts model.FormOptions, fields []*markup.Node, actions []*markup.Node) *markup.Node {
	body := markup.Element("div", nil, fields...)
	body.Append(markup.Element("div", markup.Attrs{}.Class(r.class(render.RoleActions)), actions...))
	return r.Form(source, opts, body)
}

// Link renders an anchor for the resolved navigation shape.
func (r *Renderer) Link(link model.Link, content ...*markup.Node) (*markup.Node, error) {
	resolved, err := render.ResolveLink(link, r.opts.Validator())
	if err != nil {
		return nil, err
	}

	attrs := markup.Attrs{}.Set("href", resolved.Destination)
	switch resolved.Shape {
	case render.LinkNavigate:
		state := "push"
		if resolved.Replace {
			state = "replace"
		}
		attrs = attrs.
			Set("data-phx-link", "redirect").
			Set("data-phx-link-state", state)
	case render.LinkHref:
		if !resolved.IsGet() {
			attrs = attrs.
				Set("data-method", strings.ToLower(resolved.Method)).
				Add("data-csrf", link.CSRFToken).
				Set("data-to", resolved.Destination).
				Set("rel", "nofollow")
		}
	}
	attrs = attrs.Class(r.class(render.RoleLink))

	return markup.Element("a", attrs, content...).Merge(link.Attrs), nil
}

// Button renders a submit or plain button.
func (r *Renderer) Button(button model.Button, content ...*markup.Node) *markup.Node {
	kind := "button"
	if button.IsSubmit() {
		kind = model.ButtonSubmit
	}
	attrs := markup.Attrs{}.
		Set("type", kind).
		Class(r.class(render.RoleButton))
	return markup.Element("button", attrs, content...).Merge(button.Attrs)
}

// Header renders the title block; the action column is only emitted when
// actions are supplied.
func (r *Renderer) Header(header model.Header, actions ...*markup.Node) *markup.Node {
	heading := markup.Element("div", nil,
		markup.Element("h1", markup.Attrs{}.Class(r.class(render.RoleTitle)), markup.Text(header.Title)),
	)
	if subtitle := strings.TrimSpace(header.Subtitle); subtitle != "" {
		heading.Append(markup.Element("p", markup.Attrs{}.Class(r.class(render.RoleSubtitle)), markup.Text(subtitle)))
	}

	node := markup.Element("header", markup.Attrs{}.Class(r.class(render.RoleHeader)), heading)
	if len(actions) > 0 {
		node.Append(markup.Element("div", markup.Attrs{}.Set("class", "flex-none"), actions...))
	}
	return node
}

// Flash renders a notice box, or nil when there is no message.
func (r *Renderer) Flash(flash model.Flash) *markup.Node {
	message := strings.TrimSpace(flash.Message)
	if message == "" {
		return nil
	}
	kind, role := flashKind(flash.Kind)

	node := markup.Element("div", markup.Attrs{}.
		Set("id", "flash-"+kind).
		Set("role", "alert").
		Class(r.class(role)),
	)
	if title := strings.TrimSpace(flash.Title); title != "" {
		node.Append(markup.Element("p", markup.Attrs{}.Set("class", "flex items-center gap-1.5 text-sm font-semibold leading-6"), markup.Text(title)))
	}
	return node.Append(markup.Element("p", markup.Attrs{}.Set("class", "mt-2 text-sm leading-5"), markup.Text(message)))
}

func flashKind(kind string) (string, string) {
	if strings.EqualFold(strings.TrimSpace(kind), model.FlashError) {
		return model.FlashError, render.RoleFlashError
	}
	return model.FlashInfo, render.RoleFlashInfo
}
