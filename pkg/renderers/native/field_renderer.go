package native

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-formcore/pkg/markup"
	"github.com/goliatone/go-formcore/pkg/model"
	"github.com/goliatone/go-formcore/pkg/render"
)

// Input renders field as a leading-aligned stack of label, control and
// errors.
func (r *Renderer) Input(field model.Field) *markup.Node {
	value := model.FormatValue(field.Value)

	var control *markup.Node
	switch field.Kind.Normalize() {
	case model.KindSecureField:
		control = r.control("SecureField", field, markup.Attrs{}.Add("prompt", field.Prompt))
	case model.KindToggle:
		control = r.control("Toggle", field, markup.Attrs{}.Set("isOn", strconv.FormatBool(model.Truthy(field.Value))))
	case model.KindDatePicker:
		control = r.control("DatePicker", field, markup.Attrs{}.Add("selection", value))
	case model.KindMultiDatePicker:
		control = r.control("MultiDatePicker", field, markup.Attrs{}.Add("selection", value))
	case model.KindPicker:
		control = r.picker(field, value)
	case model.KindSlider:
		control = r.control("Slider", field, sliderAttrs(field, value))
	case model.KindStepper:
		control = r.control("Stepper", field, markup.Attrs{}.Add("value", value))
	case model.KindTextEditor:
		control = r.control("TextEditor", field, markup.Attrs{}.Add("text", value))
	case model.KindTextLink:
		control = r.control("TextFieldLink", field, markup.Attrs{}.Add("prompt", field.Prompt).Add("value", value))
	default:
		control = r.control("TextField", field, markup.Attrs{}.Add("text", value).Add("prompt", field.Prompt))
	}

	frame := markup.Element("VStack", markup.Attrs{}.
		Set("alignment", "leading").
		Class(r.class(render.RoleField)),
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
	return markup.Element("Text", markup.Attrs{}.Class(r.class(render.RoleLabel)), markup.Text(text))
}

func (r *Renderer) control(tag string, field model.Field, extra markup.Attrs) *markup.Node {
	attrs := markup.Attrs{}.
		Add("id", field.ID).
		Add("name", field.Name)
	attrs = append(attrs, extra...)
	attrs = attrs.
		Flag("disabled", field.ReadOnly).
		Class(r.class(render.RoleInput))
	return markup.Element(tag, attrs).Merge(field.Attrs)
}

func (r *Renderer) picker(field model.Field, value string) *markup.Node {
	node := r.control("Picker", field, markup.Attrs{}.Add("selection", value))
	for _, option := range field.Options {
		node.Append(markup.Element("Text", markup.Attrs{}.Set("tag", model.FormatValue(option.Value)), markup.Text(option.Label)))
	}
	return node
}

func sliderAttrs(field model.Field, value string) markup.Attrs {
	attrs := markup.Attrs{}.Add("value", value)
	if field.Bounds == nil {
		return attrs
	}
	if field.Bounds.Min != nil {
		attrs = attrs.Set("lowerBound", strconv.FormatFloat(*field.Bounds.Min, 'f', -1, 64))
	}
	if field.Bounds.Max != nil {
		attrs = attrs.Set("upperBound", strconv.FormatFloat(*field.Bounds.Max, 'f', -1, 64))
	}
	return attrs
}
