package render_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcore/pkg/model"
	"github.com/goliatone/go-formcore/pkg/render"
)

func TestInterpolate(t *testing.T) {
	got := render.Interpolate("should be at least %{count} character(s) for %{field} %{missing}", map[string]any{
		"count": 12,
		"field": "password",
	})
	want := "should be at least 12 character(s) for password %{missing}"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	if got := render.Interpolate("plain", nil); got != "plain" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestErrorTranslator_NilInterpolates(t *testing.T) {
	var translator *render.ErrorTranslator
	msg := model.ErrorMessage{Template: "must be %{n}", Placeholders: map[string]any{"n": 3}}
	if got := translator.Translate(msg); got != "must be 3" {
		t.Fatalf("unexpected translation %q", got)
	}
	if got := render.NewErrorTranslator(nil, "en").Translate(msg); got != "must be 3" {
		t.Fatalf("unexpected translation %q", got)
	}
}

func TestErrorTranslator_UsesTranslator(t *testing.T) {
	var gotLocale string
	translator := render.TranslatorFunc(func(locale, key string, args ...any) (string, error) {
		gotLocale = locale
		if key == "can't be blank" {
			return "no puede estar en blanco", nil
		}
		return "", errors.New("missing")
	})

	et := render.NewErrorTranslator(translator, "es")
	if got := et.Translate(model.Message("can't be blank")); got != "no puede estar en blanco" {
		t.Fatalf("unexpected translation %q", got)
	}
	if gotLocale != "es" {
		t.Fatalf("expected locale es, got %q", gotLocale)
	}
	if got := et.Translate(model.Message("unknown %{x}")); got != "unknown %{x}" {
		t.Fatalf("expected fallback to template, got %q", got)
	}
}

func TestErrorTranslator_MissingHandler(t *testing.T) {
	var gotErr error
	et := render.NewErrorTranslator(nil, "fr", render.WithMissingTranslationHandler(func(locale, key string, args []any, err error) string {
		gotErr = err
		return locale + ":" + key
	}))
	if got := et.Translate(model.Message("invalid")); got != "fr:invalid" {
		t.Fatalf("unexpected %q", got)
	}
	if !errors.Is(gotErr, render.ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator, got %v", gotErr)
	}
}

func TestErrorTranslator_TranslateAllPreservesOrder(t *testing.T) {
	errs := []model.FieldError{
		{Field: "email", Message: model.Message("b")},
		{Field: "password", Message: model.Message("x")},
		{Field: "email", Message: model.Message("a")},
	}
	got := render.NewErrorTranslator(nil, "en").TranslateAll(errs, "email")
	if diff := cmp.Diff([]string{"b", "a"}, got); diff != "" {
		t.Fatalf("translate all mismatch (-want +got):\n%s", diff)
	}
	if got := render.NewErrorTranslator(nil, "en").TranslateAll(errs, "name"); got != nil {
		t.Fatalf("expected nil for unknown field, got %v", got)
	}
}
