package formcore

import (
	"io/fs"

	"github.com/goliatone/go-formcore/pkg/pages"
)

// EmbeddedPages exposes the built-in page definitions so callers can reuse or
// extend them without importing the pages package directly.
func EmbeddedPages() fs.FS {
	return pages.TemplatesFS()
}

// EmbeddedLayouts exposes the built-in document layouts, one per vocabulary.
func EmbeddedLayouts() fs.FS {
	return pages.LayoutsFS()
}
