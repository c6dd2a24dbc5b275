package web

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formcore/pkg/markup"
	"github.com/goliatone/go-formcore/pkg/model"
	"github.com/goliatone/go-formcore/pkg/render"
)

// Input renders field as label, control and errors inside a field frame.
func (r *Renderer) Input(field model.Field) *markup.Node {
	var control *markup.Node
	switch field.Kind.Normalize() {
	case model.KindSecureField:
		control = r.textInput(field, "password", false)
	case model.KindToggle:
		control = r.toggle(field)
	case model.KindDatePicker:
		control = r.textInput(field, "date", true)
	case model.KindMultiDatePicker:
		control = r.multiDatePicker(field)
	case model.KindPicker:
		control = r.picker(field)
	case model.KindSlider:
		control = r.slider(field)
	case model.KindStepper:
		control = r.textInput(field, "number", true)
	case model.KindTextEditor:
		control = r.textEditor(field)
	case model.KindTextLink:
		control = r.textInput(field, "text", true)
		control.SetAttr(markup.A("data-presentation", "link"))
	default:
		control = r.textInput(field, "text", true)
	}

	frame := markup.Element("div", markup.Attrs{}.
		Class(r.class(render.RoleField)).
		Add("phx-feedback-for", field.Name),
		r.label(field),
		control,
	)
	return frame.Append(r.errorNodes(field)...)
}

func (r *Renderer) label(field model.Field) *markup.Node {
	text := strings.TrimSpace(field.Label)
	if text == "" {
		return nil
	}
	return markup.Element("label", markup.Attrs{}.
		Add("for", field.ID).
		Class(r.class(render.RoleLabel)),
		markup.Text(text),
	)
}

// controlAttrs are the identity attributes shared by every control.
func (r *Renderer) controlAttrs(field model.Field, inputType string) markup.Attrs {
	attrs := markup.Attrs{}
	if inputType != "" {
		attrs = attrs.Set("type", inputType)
	}
	return attrs.
		Add("name", field.Name).
		Add("id", field.ID)
}

func (r *Renderer) finish(node *markup.Node, field model.Field, readonlyAttr string) *markup.Node {
	if field.ReadOnly {
		node.SetAttr(markup.Flag(readonlyAttr))
	}
	if field.Required {
		node.SetAttr(markup.Flag("required"))
	}
	if class := r.class(render.RoleInput); class != "" {
		node.SetAttr(markup.A("class", class))
	}
	return node.Merge(field.Attrs)
}

func (r *Renderer) textInput(field model.Field, inputType string, echo bool) *markup.Node {
	attrs := r.controlAttrs(field, inputType)
	if echo {
		attrs = attrs.Add("value", model.FormatValue(field.Value))
	}
	attrs = attrs.Add("placeholder", field.Prompt)
	return r.finish(markup.Element("input", attrs), field, "readonly")
}

func (r *Renderer) toggle(field model.Field) *markup.Node {
	hidden := markup.Element("input", markup.Attrs{}.
		Set("type", "hidden").
		Add("name", field.Name).
		Set("value", "false"),
	)
	checkbox := r.finish(markup.Element("input", r.controlAttrs(field, "checkbox").
		Set("value", "true").
		Flag("checked", model.Truthy(field.Value)),
	), field, "disabled")
	return markup.Fragment(hidden, checkbox)
}

func (r *Renderer) multiDatePicker(field model.Field) *markup.Node {
	multi := field
	if multi.Name != "" && !strings.HasSuffix(multi.Name, "[]") {
		multi.Name += "[]"
	}
	node := r.textInput(multi, "date", true)
	node.SetAttr(markup.Flag("multiple"))
	return node
}

func (r *Renderer) picker(field model.Field) *markup.Node {
	selected := model.FormatValue(field.Value)
	node := markup.Element("select", r.controlAttrs(field, ""))
	if field.Prompt != "" {
		node.Append(markup.Element("option", markup.Attrs{}.Set("value", ""), markup.Text(field.Prompt)))
	}
	for _, option := range field.Options {
		value := model.FormatValue(option.Value)
		node.Append(markup.Element("option", markup.Attrs{}.
			Set("value", value).
			Flag("selected", field.Value != nil && value == selected),
			markup.Text(option.Label),
		))
	}
	return r.finish(node, field, "disabled")
}

func (r *Renderer) slider(field model.Field) *markup.Node {
	attrs := r.controlAttrs(field, "range")
	if field.Bounds != nil {
		if field.Bounds.Min != nil {
			attrs = attrs.Set("min", formatBound(*field.Bounds.Min))
		}
		if field.Bounds.Max != nil {
			attrs = attrs.Set("max", formatBound(*field.Bounds.Max))
		}
	}
	attrs = attrs.Add("value", model.FormatValue(field.Value))
	return r.finish(markup.Element("input", attrs), field, "readonly")
}

func (r *Renderer) textEditor(field model.Field) *markup.Node {
	node := markup.Element("textarea", r.controlAttrs(field, "").Add("placeholder", field.Prompt))
	node.Text = model.FormatValue(field.Value)
	return r.finish(node, field, "readonly")
}

func formatBound(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
