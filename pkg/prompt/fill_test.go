package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcore/pkg/model"
	"github.com/goliatone/go-formcore/pkg/pages"
)

type stubDriver struct {
	inputs     []string
	passwords  []string
	confirm    []bool
	selectIdx  []int
	textAreas  []string
	infos      []string
	messages   []string
	inputPos   int
	passPos    int
	confirmPos int
	selectPos  int
	textPos    int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	s.messages = append(s.messages, cfg.Message)
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func mustPage(t *testing.T, id string) pages.Page {
	t.Helper()
	store, err := pages.Default()
	if err != nil {
		t.Fatalf("load pages: %v", err)
	}
	page, ok := store.Page(id)
	if !ok {
		t.Fatalf("page %q missing", id)
	}
	return page
}

func TestFillLogin(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"ada@example.com"},
		passwords: []string{"secret"},
		confirm:   []bool{true},
	}

	data, err := Fill(context.Background(), driver, mustPage(t, "login"), nil)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}

	want := model.FormState{
		ID:   "login_form",
		Name: "user",
		Values: map[string]any{
			"email":       "ada@example.com",
			"password":    "secret",
			"remember_me": true,
		},
	}
	if diff := cmp.Diff(want, data.Forms["login_form"]); diff != "" {
		t.Fatalf("form state mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Email *", "Password *", "Keep me logged in"}, driver.messages); diff != "" {
		t.Fatalf("prompt messages mismatch (-want +got):\n%s", diff)
	}
}

func TestFillProfileKinds(t *testing.T) {
	driver := &stubDriver{
		// display_name, birthday, availability, volume, guests, website
		inputs:    []string{"Ada", "1815-12-10", "2026-01-01, 2026-01-02", "75", "2", ""},
		textAreas: []string{"Mathematician"},
		selectIdx: []int{2},
		confirm:   []bool{false},
	}

	data, err := Fill(context.Background(), driver, mustPage(t, "profile"), nil)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}

	want := map[string]any{
		"display_name": "Ada",
		"bio":          "Mathematician",
		"birthday":     "1815-12-10",
		"availability": []string{"2026-01-01", "2026-01-02"},
		"timezone":     "Europe/Madrid",
		"volume":       75.0,
		"guests":       2.0,
		"newsletter":   false,
	}
	if diff := cmp.Diff(want, data.Forms["profile_form"].Values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestFillValidatesInput(t *testing.T) {
	driver := &stubDriver{inputs: []string{"Ada", "not-a-date"}, textAreas: []string{""}}

	_, err := Fill(context.Background(), driver, mustPage(t, "profile"), nil)
	if err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestFillAnnouncesFormTitles(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"ada@example.com"},
		passwords: []string{"old", "new", "new", "old"},
	}

	if _, err := Fill(context.Background(), driver, mustPage(t, "settings"), nil); err != nil {
		t.Fatalf("fill: %v", err)
	}
	if diff := cmp.Diff([]string{"Change Email", "Change Password"}, driver.infos); diff != "" {
		t.Fatalf("infos mismatch (-want +got):\n%s", diff)
	}
}

func TestChoose(t *testing.T) {
	got, err := Choose(context.Background(), &stubDriver{selectIdx: []int{1}}, "Page", []string{"login", "settings"}, "login")
	if err != nil || got != "settings" {
		t.Fatalf("unexpected choice %q (%v)", got, err)
	}
	if _, err := Choose(context.Background(), &stubDriver{}, "Page", nil, ""); !errors.Is(err, ErrNoChoices) {
		t.Fatalf("expected ErrNoChoices, got %v", err)
	}
}

func TestNumberValidatorBounds(t *testing.T) {
	minValue, maxValue := 0.0, 100.0
	validate := numberValidator(pages.FieldConfig{Min: &minValue, Max: &maxValue})
	if err := validate("101"); err == nil {
		t.Fatalf("expected max error")
	}
	if err := validate("abc"); err == nil {
		t.Fatalf("expected number error")
	}
	if err := validate("50"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestFillResolvesOptionSources(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"", "", "", "", "", ""},
		textAreas: []string{""},
		selectIdx: []int{1},
		confirm:   []bool{true},
	}
	sources := pages.OptionSources{
		"timezones": func() ([]model.Option, error) {
			return []model.Option{{Label: "Asia/Tokyo", Value: "Asia/Tokyo"}}, nil
		},
	}

	data, err := Fill(context.Background(), driver, mustPage(t, "profile"), sources)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	want := map[string]any{"timezone": "Asia/Tokyo", "newsletter": true}
	if diff := cmp.Diff(want, data.Forms["profile_form"].Values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}
