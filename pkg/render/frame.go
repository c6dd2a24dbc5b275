package render

import (
	"github.com/goliatone/go-formcore/pkg/markup"
	"github.com/goliatone/go-formcore/pkg/model"
)

// ErrorNodes translates messages and wraps each one with build, preserving
// order. Every vocabulary attaches field errors through this helper.
func ErrorNodes(errs *ErrorTranslator, messages []model.ErrorMessage, build func(string) *markup.Node) []*markup.Node {
	if len(messages) == 0 || build == nil {
		return nil
	}
	out := make([]*markup.Node, 0, len(messages))
	for _, text := range errs.TranslateMessages(messages) {
		out = append(out, build(text))
	}
	return out
}

// FormID resolves the form element id: explicit options win over the source.
func FormID(source model.FormSource, opts model.FormOptions) string {
	if opts.ID != "" {
		return opts.ID
	}
	if source == nil {
		return ""
	}
	return source.FormID()
}
