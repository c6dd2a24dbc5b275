package web

import "github.com/goliatone/go-formcore/pkg/render"

// DefaultTheme returns the baseline utility classes for each role.
func DefaultTheme() render.Theme {
	return render.Theme{
		Name: "default",
		Tokens: map[string]string{
			render.RoleForm:       "formcore-form mt-10 space-y-8",
			render.RoleField:      "formcore-field grid gap-2",
			render.RoleLabel:      "block text-sm font-semibold leading-6 text-zinc-800",
			render.RoleInput:      "mt-2 block w-full rounded-lg text-zinc-900 sm:text-sm sm:leading-6",
			render.RoleError:      "formcore-error mt-3 flex gap-3 text-sm leading-6 text-rose-600",
			render.RoleActions:    "formcore-actions mt-2 flex items-center justify-between gap-6",
			render.RoleButton:     "rounded-lg bg-zinc-900 py-2 px-3 text-sm font-semibold leading-6 text-white",
			render.RoleLink:       "font-semibold text-brand hover:underline",
			render.RoleHeader:     "formcore-header flex items-center justify-between gap-6",
			render.RoleTitle:      "text-lg font-semibold leading-8 text-zinc-800",
			render.RoleSubtitle:   "mt-2 text-sm leading-6 text-zinc-600",
			render.RoleFlashInfo:  "formcore-flash rounded-lg p-3 bg-emerald-50 text-emerald-800",
			render.RoleFlashError: "formcore-flash rounded-lg p-3 bg-rose-50 text-rose-900",
		},
	}
}
