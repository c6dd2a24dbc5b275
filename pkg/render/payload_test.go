package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcore/pkg/model"
	"github.com/goliatone/go-formcore/pkg/render"
)

func TestMapErrorPayload_MapsKnownFields(t *testing.T) {
	payload := map[string][]string{
		"/body/name":           {"Name is required"},
		"user.email":           {"Email invalid", " Email invalid "},
		"$.body.tags[0]":       {"Tags must be unique"},
		"user[password]":       {"Password too short"},
		"non_field_errors":     {"Form level error"},
		"request/body/unknown": {"Should fall back to form errors"},
		"":                     {"Unscoped form error"},
		"user.ignored":         {"  "},
	}

	mapped := render.MapErrorPayload("user", []string{"name", "email", "tags"}, payload)

	wantFields := []model.FieldError{
		{Field: "tags", Message: model.Message("Tags must be unique")},
		{Field: "name", Message: model.Message("Name is required")},
		{Field: "email", Message: model.Message("Email invalid")},
	}
	if diff := cmp.Diff(wantFields, mapped.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	wantForm := []string{
		"Unscoped form error",
		"Form level error",
		"Should fall back to form errors",
		"Password too short",
	}
	if diff := cmp.Diff(wantForm, mapped.Form); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrorPayload_Empty(t *testing.T) {
	mapped := render.MapErrorPayload("user", []string{"email"}, nil)
	if mapped.Fields != nil || mapped.Form != nil {
		t.Fatalf("expected empty mapping, got %+v", mapped)
	}
}
