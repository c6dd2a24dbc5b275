package native_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcore/pkg/markup"
	"github.com/goliatone/go-formcore/pkg/model"
	"github.com/goliatone/go-formcore/pkg/render"
	"github.com/goliatone/go-formcore/pkg/renderers/native"
)

var userForm = model.FormState{Name: "user"}

func only(t *testing.T, root *markup.Node, tag string) *markup.Node {
	t.Helper()
	nodes := root.FindTag(tag)
	if len(nodes) != 1 {
		t.Fatalf("expected one %s, got %d in %s", tag, len(nodes), markup.Render(root, markup.SyntaxNative))
	}
	return nodes[0]
}

func attrOf(t *testing.T, node *markup.Node, key string) string {
	t.Helper()
	value, ok := node.Attr(key)
	if !ok {
		t.Fatalf("expected attribute %q on %s", key, markup.Render(node, markup.SyntaxNative))
	}
	return value
}

func TestInput_WidgetCatalog(t *testing.T) {
	cases := []struct {
		kind model.Kind
		tag  string
	}{
		{model.KindTextField, "TextField"},
		{model.KindSecureField, "SecureField"},
		{model.KindToggle, "Toggle"},
		{model.KindDatePicker, "DatePicker"},
		{model.KindMultiDatePicker, "MultiDatePicker"},
		{model.KindPicker, "Picker"},
		{model.KindSlider, "Slider"},
		{model.KindStepper, "Stepper"},
		{model.KindTextEditor, "TextEditor"},
		{model.KindTextLink, "TextFieldLink"},
		{model.Kind(""), "TextField"},
		{model.Kind("Hologram"), "TextField"},
	}

	renderer := native.New()
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			node := renderer.Input(model.Field{Kind: tc.kind, ID: "user_x", Name: "user[x]", Label: "X"})
			if node.Tag != "VStack" {
				t.Fatalf("expected VStack frame, got %s", node.Tag)
			}
			control := only(t, node, tc.tag)
			if attrOf(t, control, "name") != "user[x]" {
				t.Fatalf("unexpected name")
			}
			if node.Children[0].TextContent() != "X" {
				t.Fatalf("label should come first")
			}
		})
	}
}

func TestInput_PickerOptionsInOrder(t *testing.T) {
	field := model.Field{
		Kind:    model.KindPicker,
		Name:    "choice",
		Value:   2,
		Options: []model.Option{{Label: "A", Value: 1}, {Label: "B", Value: 2}},
	}
	picker := only(t, native.New().Input(field), "Picker")
	if attrOf(t, picker, "selection") != "2" {
		t.Fatalf("unexpected selection")
	}

	var labels, tags []string
	for _, child := range picker.Children {
		labels = append(labels, child.TextContent())
		tags = append(tags, attrOf(t, child, "tag"))
	}
	if diff := cmp.Diff([]string{"A", "B"}, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "2"}, tags); diff != "" {
		t.Fatalf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestInput_SingleErrorNode(t *testing.T) {
	node := native.New().Input(model.Field{Name: "email", Errors: []model.ErrorMessage{model.Message("can't be blank")}})
	label := only(t, node, "Label")
	if label.TextContent() != "can't be blank" {
		t.Fatalf("unexpected error text %q", label.TextContent())
	}
	if label != node.Children[len(node.Children)-1] {
		t.Fatalf("error should follow the control")
	}
}

func TestInput_SliderBounds(t *testing.T) {
	slider := only(t, native.New().Input(model.Field{Kind: model.KindSlider, Name: "v", Bounds: model.NewBounds(0, 10)}), "Slider")
	if attrOf(t, slider, "lowerBound") != "0" || attrOf(t, slider, "upperBound") != "10" {
		t.Fatalf("unexpected bounds")
	}

	maxValue := 5.0
	partial := only(t, native.New().Input(model.Field{Kind: model.KindSlider, Name: "v", Bounds: &model.Bounds{Max: &maxValue}}), "Slider")
	if partial.HasAttr("lowerBound") {
		t.Fatalf("absent bound must be omitted")
	}
	if attrOf(t, partial, "upperBound") != "5" {
		t.Fatalf("unexpected upper bound")
	}
}

func TestInput_SecureFieldAndToggle(t *testing.T) {
	renderer := native.New()
	secure := only(t, renderer.Input(model.Field{Kind: model.KindSecureField, Name: "p", Value: "hunter2"}), "SecureField")
	if secure.HasAttr("text") || secure.HasAttr("value") {
		t.Fatalf("secure field must not echo its value")
	}

	toggle := only(t, renderer.Input(model.Field{Kind: model.KindToggle, Name: "remember", Value: true}), "Toggle")
	if attrOf(t, toggle, "isOn") != "true" {
		t.Fatalf("expected isOn true")
	}
}

func TestInput_ReadOnlyDisables(t *testing.T) {
	field := only(t, native.New().Input(model.Field{Name: "email", ReadOnly: true, Attrs: map[string]string{"autocorrectionDisabled": "true"}}), "TextField")
	if !field.HasAttr("disabled") {
		t.Fatalf("expected disabled")
	}
	if attrOf(t, field, "autocorrectionDisabled") != "true" {
		t.Fatalf("expected extra attribute")
	}
}

func TestInput_SelfClosingSyntax(t *testing.T) {
	out := markup.Render(native.New().Input(model.Field{ID: "user_email", Name: "user[email]", Value: "a@b.c"}), markup.SyntaxNative)
	if !strings.Contains(out, `<TextField id="user_email" name="user[email]" text="a@b.c" class="input" />`) {
		t.Fatalf("unexpected output %s", out)
	}
}

func TestForm_MethodRules(t *testing.T) {
	renderer := native.New()

	post := renderer.Form(userForm, model.FormOptions{Action: "/users/log_in"})
	if post.Tag != "LiveForm" || attrOf(t, post, "method") != "post" || attrOf(t, post, "id") != "user" {
		t.Fatalf("unexpected form %s", markup.Render(post, markup.SyntaxNative))
	}

	put := renderer.Form(userForm, model.FormOptions{Action: "/users/settings", Method: "put", CSRFToken: "tok"})
	if attrOf(t, put, "method") != "post" {
		t.Fatalf("expected visible post")
	}
	hidden := put.FindTag("LiveHiddenField")
	if len(hidden) != 2 {
		t.Fatalf("expected csrf and override, got %d", len(hidden))
	}
	if attrOf(t, hidden[1], "name") != "_method" || attrOf(t, hidden[1], "value") != "put" {
		t.Fatalf("unexpected override %s", markup.Render(hidden[1], markup.SyntaxNative))
	}

	none := renderer.Form(userForm, model.FormOptions{Method: "put"})
	if none.HasAttr("method") || len(none.FindTag("LiveHiddenField")) != 0 {
		t.Fatalf("no action should omit method and side channels")
	}

	multipart := renderer.Form(userForm, model.FormOptions{Action: "/a", Multipart: true})
	if attrOf(t, multipart, "enctype") != "multipart/form-data" {
		t.Fatalf("expected multipart enctype")
	}
}

func TestSimpleForm(t *testing.T) {
	renderer := native.New()
	node := renderer.SimpleForm(userForm, model.FormOptions{Action: "/x"},
		[]*markup.Node{renderer.Input(userForm.Field("email", model.KindTextField, "Email"))},
		[]*markup.Node{renderer.Button(model.Button{Type: "submit"}, markup.Text("Save"))},
	)
	form := only(t, node, "Form")
	if len(form.Children) != 2 || form.Children[1].Tag != "Section" {
		t.Fatalf("expected fields then action section")
	}
	only(t, form.Children[1], "LiveSubmitButton")
}

func TestLink_Shapes(t *testing.T) {
	renderer := native.New()

	nav, err := renderer.Link(model.Link{Navigate: "/users/register"})
	if err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if nav.Tag != "NavigationLink" || attrOf(t, nav, "destination") != "/users/register" {
		t.Fatalf("unexpected navigate shape %s", markup.Render(nav, markup.SyntaxNative))
	}

	href, err := renderer.Link(model.Link{Href: "https://example.com"})
	if err != nil {
		t.Fatalf("href: %v", err)
	}
	if href.Tag != "Link" {
		t.Fatalf("expected Link for href, got %s", href.Tag)
	}

	placeholder, _ := renderer.Link(model.Link{Href: "#"})
	fallback, _ := renderer.Link(model.Link{})
	if diff := cmp.Diff(fallback, placeholder); diff != "" {
		t.Fatalf("placeholder should match fallback (-want +got):\n%s", diff)
	}
	if fallback.Tag != "NavigationLink" || attrOf(t, fallback, "destination") != "#" {
		t.Fatalf("unexpected fallback")
	}

	bad, err := renderer.Link(model.Link{Href: "javascript:alert(1)"})
	if !errors.Is(err, render.ErrInvalidDestination) || bad != nil {
		t.Fatalf("expected ErrInvalidDestination and no node, got %v %v", bad, err)
	}
}

func TestButton(t *testing.T) {
	renderer := native.New()
	if tag := renderer.Button(model.Button{Type: "submit"}).Tag; tag != "LiveSubmitButton" {
		t.Fatalf("unexpected submit tag %s", tag)
	}
	if tag := renderer.Button(model.Button{}).Tag; tag != "Button" {
		t.Fatalf("unexpected plain tag %s", tag)
	}
}

func TestHeaderFlashError(t *testing.T) {
	renderer := native.New()
	header := renderer.Header(model.Header{Title: "Log in"}, markup.Text("x"))
	if len(header.FindTag("HStack")) != 1 || header.Children[0].TextContent() != "Log in" {
		t.Fatalf("unexpected header %s", markup.Render(header, markup.SyntaxNative))
	}

	if renderer.Flash(model.Flash{}) != nil {
		t.Fatalf("empty flash should be nil")
	}
	flash := renderer.Flash(model.Flash{Kind: "info", Message: "Welcome back!"})
	if attrOf(t, flash, "id") != "flash-info" || flash.TextContent() != "Welcome back!" {
		t.Fatalf("unexpected flash")
	}

	errNode := renderer.Error("oops")
	if errNode.Tag != "Label" || only(t, errNode, "Text").TextContent() != "oops" {
		t.Fatalf("unexpected error node")
	}
}

func TestRendererMetadata(t *testing.T) {
	var r render.Renderer = native.New()
	if r.Name() != "native" || r.Syntax() != markup.SyntaxNative {
		t.Fatalf("unexpected metadata")
	}
	if !strings.HasPrefix(r.ContentType(), "text/swiftui") {
		t.Fatalf("unexpected content type %s", r.ContentType())
	}
}
