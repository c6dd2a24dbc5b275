package model

import "strings"

// Kind identifies the widget a field renders as. The set is closed; every
// renderer must handle each value.
type Kind string

const (
	KindTextLink        Kind = "TextLink"
	KindDatePicker      Kind = "DatePicker"
	KindMultiDatePicker Kind = "MultiDatePicker"
	KindPicker          Kind = "Picker"
	KindSlider          Kind = "Slider"
	KindStepper         Kind = "Stepper"
	KindTextEditor      Kind = "TextEditor"
	KindTextField       Kind = "TextField"
	KindSecureField     Kind = "SecureField"
	KindToggle          Kind = "Toggle"
)

// DefaultKind is used when a field carries no kind or an unknown one.
const DefaultKind = KindTextField

var kinds = []Kind{
	KindTextLink,
	KindDatePicker,
	KindMultiDatePicker,
	KindPicker,
	KindSlider,
	KindStepper,
	KindTextEditor,
	KindTextField,
	KindSecureField,
	KindToggle,
}

// web-flavoured names accepted by ParseKind so page definitions can use
// either vocabulary.
var kindAliases = map[string]Kind{
	"text":          KindTextField,
	"email":         KindTextField,
	"password":      KindSecureField,
	"checkbox":      KindToggle,
	"switch":        KindToggle,
	"select":        KindPicker,
	"textarea":      KindTextEditor,
	"date":          KindDatePicker,
	"dates":         KindMultiDatePicker,
	"multidate":     KindMultiDatePicker,
	"range":         KindSlider,
	"number":        KindStepper,
	"link":          KindTextLink,
	"textfieldlink": KindTextLink,
}

// Kinds returns the closed set of widget kinds.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind resolves a kind name case-insensitively, accepting web aliases.
// The boolean is false when nothing matched.
func ParseKind(raw string) (Kind, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	for _, kind := range kinds {
		if strings.EqualFold(string(kind), trimmed) {
			return kind, true
		}
	}
	if kind, ok := kindAliases[strings.ToLower(trimmed)]; ok {
		return kind, true
	}
	return "", false
}

// Normalize returns the canonical kind, falling back to DefaultKind.
func (k Kind) Normalize() Kind {
	if kind, ok := ParseKind(string(k)); ok {
		return kind
	}
	return DefaultKind
}

// Valid reports whether k names a known kind or alias.
func (k Kind) Valid() bool {
	_, ok := ParseKind(string(k))
	return ok
}
