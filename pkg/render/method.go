package render

import "strings"

// MethodPolicy controls how non GET/POST verbs reach the form element.
type MethodPolicy int

const (
	// MethodOverridePolicy downgrades every verb other than GET/POST to POST
	// and carries the original verb in the hidden method field.
	MethodOverridePolicy MethodPolicy = iota
	// MethodNativePolicy emits the verb as given. Only meaningful for
	// transports that submit PUT/PATCH/DELETE natively.
	MethodNativePolicy
)

// ParseMethodPolicy maps a config value onto a policy; unknown values fall
// back to MethodOverridePolicy.
func ParseMethodPolicy(raw string) MethodPolicy {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "native":
		return MethodNativePolicy
	default:
		return MethodOverridePolicy
	}
}

func (p MethodPolicy) String() string {
	if p == MethodNativePolicy {
		return "native"
	}
	return "override"
}

// FormMethod is the resolved method of a form element. An empty Method means
// the attribute is omitted; Override holds the verb carried in the hidden
// method field.
type FormMethod struct {
	Method   string
	Override string
}

// IsGet reports whether the effective method is GET.
func (m FormMethod) IsGet() bool {
	return strings.EqualFold(m.Method, "get")
}

// ResolveFormMethod applies the form method rules:
//
//   - no action: method omitted
//   - action without method: post
//   - get/post (any case): passed through unchanged
//   - anything else: post, with the original value as override
func ResolveFormMethod(action, method string, policy MethodPolicy) FormMethod {
	if strings.TrimSpace(action) == "" {
		return FormMethod{}
	}
	method = strings.TrimSpace(method)
	switch {
	case method == "":
		return FormMethod{Method: "post"}
	case strings.EqualFold(method, "get"), strings.EqualFold(method, "post"):
		return FormMethod{Method: method}
	case policy == MethodNativePolicy:
		return FormMethod{Method: method}
	default:
		return FormMethod{Method: "post", Override: method}
	}
}
