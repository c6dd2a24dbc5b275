package web_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/goliatone/go-formcore/pkg/markup"
)

func parse(t *testing.T, node *markup.Node) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup.Render(node, markup.SyntaxHTML)))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func attr(t *testing.T, sel *goquery.Selection, name string) string {
	t.Helper()
	value, ok := sel.Attr(name)
	if !ok {
		html, _ := goquery.OuterHtml(sel)
		t.Fatalf("expected attribute %q on %s", name, html)
	}
	return value
}

func assertNoAttr(t *testing.T, sel *goquery.Selection, name string) {
	t.Helper()
	if _, ok := sel.Attr(name); ok {
		html, _ := goquery.OuterHtml(sel)
		t.Fatalf("unexpected attribute %q on %s", name, html)
	}
}
