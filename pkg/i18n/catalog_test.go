package i18n_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcore/pkg/i18n"
	"github.com/goliatone/go-formcore/pkg/model"
	"github.com/goliatone/go-formcore/pkg/render"
)

func newCatalog(t *testing.T, opts ...i18n.Option) *i18n.Catalog {
	t.Helper()
	catalog, err := i18n.New(opts...)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	return catalog
}

func TestCatalog_Translate(t *testing.T) {
	catalog := newCatalog(t)

	got, err := catalog.Translate("es", "can't be blank")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "no puede estar en blanco" {
		t.Fatalf("unexpected translation %q", got)
	}
}

func TestCatalog_Pluralisation(t *testing.T) {
	catalog := newCatalog(t)

	cases := []struct {
		locale string
		count  int
		want   string
	}{
		{"en", 1, "should be at least 1 character"},
		{"en", 12, "should be at least 12 characters"},
		{"es", 1, "debe tener al menos 1 carácter"},
		{"es", 12, "debe tener al menos 12 caracteres"},
	}
	for _, tc := range cases {
		got, err := catalog.Translate(tc.locale, "should be at least %{count} character(s)", map[string]any{"count": tc.count})
		if err != nil {
			t.Fatalf("%s/%d: %v", tc.locale, tc.count, err)
		}
		if got != tc.want {
			t.Fatalf("%s/%d: want %q, got %q", tc.locale, tc.count, tc.want, got)
		}
	}
}

func TestCatalog_MissingMessage(t *testing.T) {
	catalog := newCatalog(t)
	if _, err := catalog.Translate("en", "no such message"); !errors.Is(err, i18n.ErrMissingMessage) {
		t.Fatalf("expected ErrMissingMessage, got %v", err)
	}
}

func TestCatalog_FallsBackToDefaultLanguage(t *testing.T) {
	catalog := newCatalog(t)
	got, err := catalog.Translate("fr", "has invalid format")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "has invalid format" {
		t.Fatalf("unexpected fallback %q", got)
	}
}

func TestCatalog_Match(t *testing.T) {
	catalog := newCatalog(t)
	cases := map[string]string{
		"es-MX":                      "es",
		"fr-CH, fr;q=0.9, es;q=0.8": "es",
		"de":                         "en",
		"":                           "en",
	}
	for header, want := range cases {
		if got := catalog.Match(header); got != want {
			t.Fatalf("match %q: want %q, got %q", header, want, got)
		}
	}
	if diff := cmp.Diff([]string{"en", "es"}, catalog.Locales()); diff != "" {
		t.Fatalf("locales mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_ExtraMessagesOverride(t *testing.T) {
	extra := fstest.MapFS{
		"es.yaml": {Data: []byte(`"can't be blank": "es obligatorio"` + "\n")},
		"fr.yaml": {Data: []byte(`"can't be blank": "doit être rempli(e)"` + "\n")},
	}
	catalog := newCatalog(t, i18n.WithMessagesFS(extra))

	if got, _ := catalog.Translate("es", "can't be blank"); got != "es obligatorio" {
		t.Fatalf("expected override, got %q", got)
	}
	if got, _ := catalog.Translate("fr", "can't be blank"); got != "doit être rempli(e)" {
		t.Fatalf("expected french, got %q", got)
	}
}

func TestCatalog_BadMessageFile(t *testing.T) {
	bad := fstest.MapFS{"en.yaml": {Data: []byte("key: [unterminated")}}
	if _, err := i18n.New(i18n.WithoutEmbeddedMessages(), i18n.WithMessagesFS(bad)); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestCatalog_AsErrorTranslator(t *testing.T) {
	errs := render.NewErrorTranslator(newCatalog(t), "es")

	got := errs.TranslateMessages([]model.ErrorMessage{
		model.Message("can't be blank"),
		{Template: "should be at least %{count} character(s)", Placeholders: map[string]any{"count": 12}},
		model.Message("unknown %{thing}"),
	})
	want := []string{
		"no puede estar en blanco",
		"debe tener al menos 12 caracteres",
		"unknown %{thing}",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("translations mismatch (-want +got):\n%s", diff)
	}
}
