package native

import "github.com/goliatone/go-formcore/pkg/render"

// DefaultTheme maps roles onto stylesheet class names.
func DefaultTheme() render.Theme {
	return render.Theme{
		Name: "default",
		Tokens: map[string]string{
			render.RoleField:      "field",
			render.RoleLabel:      "label",
			render.RoleInput:      "input",
			render.RoleError:      "error",
			render.RoleActions:    "actions",
			render.RoleButton:     "button",
			render.RoleLink:       "link",
			render.RoleHeader:     "header",
			render.RoleTitle:      "title",
			render.RoleSubtitle:   "subtitle",
			render.RoleFlashInfo:  "flash-info",
			render.RoleFlashError: "flash-error",
		},
	}
}
