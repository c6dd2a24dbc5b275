package formcore_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-formcore"
	"github.com/goliatone/go-formcore/pkg/i18n"
)

func TestGeneratePage(t *testing.T) {
	output, err := formcore.GeneratePage(context.Background(), "forgot_password", "web", formcore.Data{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(output), `id="reset_password_form"`) {
		t.Fatalf("expected reset form, got:\n%s", output)
	}
}

func TestGeneratePageWithTranslator(t *testing.T) {
	catalog, err := i18n.New()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	gen := formcore.NewOrchestrator(formcore.WithTranslator(catalog))
	output, err := gen.Generate(context.Background(), formcore.Request{Page: "confirmation", Vocabulary: "native", Locale: "es"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(output), "Confirmar mi cuenta") {
		t.Fatalf("expected translated button, got:\n%s", output)
	}
}

func TestEmbeddedAssets(t *testing.T) {
	if _, err := fs.Stat(formcore.EmbeddedPages(), "login.yaml"); err != nil {
		t.Fatalf("expected login page: %v", err)
	}
	for _, name := range []string{"web.tmpl", "native.tmpl"} {
		if _, err := fs.Stat(formcore.EmbeddedLayouts(), name); err != nil {
			t.Fatalf("expected layout %s: %v", name, err)
		}
	}
}
