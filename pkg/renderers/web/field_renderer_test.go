package web_test

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcore/pkg/markup"
	"github.com/goliatone/go-formcore/pkg/model"
	"github.com/goliatone/go-formcore/pkg/render"
	"github.com/goliatone/go-formcore/pkg/renderers/web"
)

func TestInput_WidgetCatalog(t *testing.T) {
	renderer := web.New()

	cases := []struct {
		kind     model.Kind
		selector string
	}{
		{model.KindTextField, `input[type="text"]`},
		{model.KindSecureField, `input[type="password"]`},
		{model.KindToggle, `input[type="checkbox"]`},
		{model.KindDatePicker, `input[type="date"]`},
		{model.KindMultiDatePicker, `input[type="date"][multiple]`},
		{model.KindPicker, `select`},
		{model.KindSlider, `input[type="range"]`},
		{model.KindStepper, `input[type="number"]`},
		{model.KindTextEditor, `textarea`},
		{model.KindTextLink, `input[type="text"][data-presentation="link"]`},
		{model.Kind(""), `input[type="text"]`},
		{model.Kind("Hologram"), `input[type="text"]`},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			node := renderer.Input(model.Field{Kind: tc.kind, ID: "user_x", Name: "user[x]", Label: "X"})
			if node == nil {
				t.Fatalf("expected a node")
			}
			doc := parse(t, node)
			if got := doc.Find("div.formcore-field").Length(); got != 1 {
				t.Fatalf("expected one field frame, got %d", got)
			}
			if got := doc.Find(tc.selector).Length(); got != 1 {
				t.Fatalf("expected one %s control, got %d in %s", tc.selector, got, markup.Render(node, markup.SyntaxHTML))
			}
			if got := doc.Find(`label[for="user_x"]`).Text(); got != "X" {
				t.Fatalf("expected label X, got %q", got)
			}
		})
	}
}

func TestInput_PickerPreservesOptionOrder(t *testing.T) {
	field := model.Field{
		Kind:  model.KindPicker,
		Name:  "choice",
		Value: 2,
		Options: []model.Option{
			{Label: "A", Value: 1},
			{Label: "B", Value: 2},
			{Label: "A", Value: 1},
		},
	}
	doc := parse(t, web.New().Input(field))

	var labels, values []string
	doc.Find("select option").Each(func(_ int, sel *goquery.Selection) {
		labels = append(labels, sel.Text())
		values = append(values, sel.AttrOr("value", ""))
	})
	if diff := cmp.Diff([]string{"A", "B", "A"}, labels); diff != "" {
		t.Fatalf("option labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "2", "1"}, values); diff != "" {
		t.Fatalf("option values mismatch (-want +got):\n%s", diff)
	}
	if got := doc.Find("option[selected]").Text(); got != "B" {
		t.Fatalf("expected B selected, got %q", got)
	}
}

func TestInput_PickerPrompt(t *testing.T) {
	field := model.Field{Kind: model.KindPicker, Name: "c", Prompt: "Choose", Options: []model.Option{{Label: "A", Value: "a"}}}
	doc := parse(t, web.New().Input(field))
	first := doc.Find("select option").First()
	if first.Text() != "Choose" || first.AttrOr("value", "x") != "" {
		t.Fatalf("expected prompt option first")
	}
	if doc.Find("option[selected]").Length() != 0 {
		t.Fatalf("nothing should be selected without a value")
	}
}

func TestInput_SingleErrorNode(t *testing.T) {
	field := model.Field{Name: "email", Errors: []model.ErrorMessage{model.Message("can't be blank")}}
	doc := parse(t, web.New().Input(field))

	errors := doc.Find("p.formcore-error")
	if errors.Length() != 1 {
		t.Fatalf("expected one error node, got %d", errors.Length())
	}
	if errors.Text() != "can't be blank" {
		t.Fatalf("unexpected error text %q", errors.Text())
	}
}

func TestInput_ErrorsTranslatedInOrder(t *testing.T) {
	translator := render.TranslatorFunc(func(locale, key string, args ...any) (string, error) {
		return locale + ":" + key, nil
	})
	renderer := web.New(render.WithTranslator(translator, "es"))
	field := model.Field{Name: "password", Errors: []model.ErrorMessage{model.Message("first"), model.Message("second")}}

	var got []string
	parse(t, renderer.Input(field)).Find("p.formcore-error").Each(func(_ int, sel *goquery.Selection) {
		got = append(got, sel.Text())
	})
	if diff := cmp.Diff([]string{"es:first", "es:second"}, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestInput_SliderBounds(t *testing.T) {
	minValue := 1.5
	cases := []struct {
		name    string
		bounds  *model.Bounds
		wantMin string
		wantMax string
	}{
		{name: "both", bounds: model.NewBounds(0, 100), wantMin: "0", wantMax: "100"},
		{name: "min only", bounds: &model.Bounds{Min: &minValue}, wantMin: "1.5"},
		{name: "none"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := parse(t, web.New().Input(model.Field{Kind: model.KindSlider, Name: "volume", Bounds: tc.bounds}))
			input := doc.Find(`input[type="range"]`)
			if tc.wantMin == "" {
				assertNoAttr(t, input, "min")
			} else if got := attr(t, input, "min"); got != tc.wantMin {
				t.Fatalf("min: want %q, got %q", tc.wantMin, got)
			}
			if tc.wantMax == "" {
				assertNoAttr(t, input, "max")
			} else if got := attr(t, input, "max"); got != tc.wantMax {
				t.Fatalf("max: want %q, got %q", tc.wantMax, got)
			}
		})
	}
}

func TestInput_SecureFieldNeverEchoesValue(t *testing.T) {
	doc := parse(t, web.New().Input(model.Field{Kind: model.KindSecureField, Name: "password", Value: "hunter2"}))
	assertNoAttr(t, doc.Find(`input[type="password"]`), "value")
}

func TestInput_ToggleEmitsHiddenFalse(t *testing.T) {
	doc := parse(t, web.New().Input(model.Field{Kind: model.KindToggle, Name: "remember_me", Value: "true"}))

	hidden := doc.Find(`input[type="hidden"]`)
	if attr(t, hidden, "name") != "remember_me" || attr(t, hidden, "value") != "false" {
		t.Fatalf("unexpected hidden input")
	}
	checkbox := doc.Find(`input[type="checkbox"]`)
	if attr(t, checkbox, "value") != "true" {
		t.Fatalf("checkbox should submit true")
	}
	attr(t, checkbox, "checked")
}

func TestInput_MultiDatePickerName(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
	}
	doc := parse(t, web.New().Input(model.Field{Kind: model.KindMultiDatePicker, Name: "trip[days]", Value: dates}))
	input := doc.Find(`input[type="date"]`)
	if got := attr(t, input, "name"); got != "trip[days][]" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := attr(t, input, "value"); got != "2024-01-02,2024-03-04" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestInput_TextEditorValueAsContent(t *testing.T) {
	doc := parse(t, web.New().Input(model.Field{Kind: model.KindTextEditor, Name: "bio", Value: "<hi>"}))
	if got := doc.Find("textarea").Text(); got != "<hi>" {
		t.Fatalf("unexpected textarea content %q", got)
	}
}

func TestInput_ReadOnlyAndExtras(t *testing.T) {
	field := model.Field{
		Name:     "email",
		ReadOnly: true,
		Required: true,
		Attrs: map[string]string{
			"autocomplete": "username",
			"class":        "custom",
			"bad name":     "dropped",
			"phx-debounce": "blur",
		},
	}
	doc := parse(t, web.New().Input(field))
	input := doc.Find("input")
	attr(t, input, "readonly")
	attr(t, input, "required")
	if got := attr(t, input, "class"); got != "custom" {
		t.Fatalf("extras should override built-in class, got %q", got)
	}
	if got := attr(t, input, "autocomplete"); got != "username" {
		t.Fatalf("unexpected autocomplete %q", got)
	}
	html := markup.Render(web.New().Input(field), markup.SyntaxHTML)
	if want := `autocomplete="username" phx-debounce="blur"`; !strings.Contains(html, want) {
		t.Fatalf("expected sorted extras %q in %s", want, html)
	}
	if strings.Contains(html, "dropped") {
		t.Fatalf("invalid attribute should be dropped: %s", html)
	}

	picker := parse(t, web.New().Input(model.Field{Kind: model.KindPicker, Name: "c", ReadOnly: true}))
	attr(t, picker.Find("select"), "disabled")
}

func TestInput_DoesNotMutateField(t *testing.T) {
	field := model.Field{Kind: model.KindMultiDatePicker, Name: "days", Attrs: map[string]string{"a": "b"}}
	before := field
	web.New().Input(field)
	if diff := cmp.Diff(before, field); diff != "" {
		t.Fatalf("field mutated (-want +got):\n%s", diff)
	}
}
