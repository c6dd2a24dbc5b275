package markup

import "strings"

// Attrs is an ordered attribute list builder.
type Attrs []Attr

// Add appends key=value, skipping empty values.
func (a Attrs) Add(key, value string) Attrs {
	if value == "" {
		return a
	}
	return append(a, A(key, value))
}

// Set appends key=value even when value is empty.
func (a Attrs) Set(key, value string) Attrs {
	return append(a, A(key, value))
}

// Flag appends a boolean attribute when on is true.
func (a Attrs) Flag(key string, on bool) Attrs {
	if !on {
		return a
	}
	return append(a, Flag(key))
}

// Class appends the joined non-empty class lists.
func (a Attrs) Class(classes ...string) Attrs {
	parts := make([]string, 0, len(classes))
	for _, class := range classes {
		if trimmed := strings.TrimSpace(class); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return a.Add("class", strings.Join(parts, " "))
}
