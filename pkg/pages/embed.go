package pages

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.yaml
var embeddedTemplates embed.FS

//go:embed layouts/*.tmpl
var embeddedLayouts embed.FS

// TemplatesFS returns the bundled page definitions.
func TemplatesFS() fs.FS {
	return mustSub(embeddedTemplates, "templates")
}

// LayoutsFS returns the bundled document layouts, one per vocabulary
// ("web.tmpl", "native.tmpl").
func LayoutsFS() fs.FS {
	return mustSub(embeddedLayouts, "layouts")
}

func mustSub(files embed.FS, dir string) fs.FS {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
