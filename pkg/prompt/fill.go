// Package prompt fills page form state interactively from a terminal, one
// prompt per field, so pages can be previewed with realistic values.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-formcore/pkg/model"
	"github.com/goliatone/go-formcore/pkg/pages"
)

const dateLayout = "2006-01-02"

// Choose asks the user to pick one of options and returns it. The current
// value is preselected when present.
func Choose(ctx context.Context, driver Driver, message string, options []string, current string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoChoices
	}
	idx, err := driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      options,
		DefaultIndex: indexOf(options, current),
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(options) {
		return "", fmt.Errorf("prompt: selection %d out of range", idx)
	}
	return options[idx], nil
}

// Fill prompts for every field of every form on page and returns the
// resulting data keyed by form id. Picker options resolve through sources,
// which may be nil.
func Fill(ctx context.Context, driver Driver, page pages.Page, sources pages.OptionSources) (pages.Data, error) {
	if driver == nil {
		return pages.Data{}, errors.New("prompt: driver is required")
	}

	data := pages.Data{Forms: make(map[string]model.FormState, len(page.Forms))}
	for _, form := range page.Forms {
		if len(form.Fields) == 0 {
			continue
		}
		if form.Title != "" {
			if err := driver.Info(ctx, form.Title); err != nil {
				return pages.Data{}, err
			}
		}

		values := make(map[string]any, len(form.Fields))
		for _, field := range form.Fields {
			options, err := sources.Resolve(field)
			if err != nil {
				return pages.Data{}, fmt.Errorf("prompt: form %q: %w", form.ID, err)
			}
			field.Options = options
			value, err := ask(ctx, driver, field)
			if err != nil {
				return pages.Data{}, fmt.Errorf("prompt: form %q field %q: %w", form.ID, field.Name, err)
			}
			if value != nil {
				values[field.Name] = value
			}
		}
		data.Forms[form.ID] = model.FormState{ID: form.ID, Name: form.Name, Values: values}
	}
	return data, nil
}

func ask(ctx context.Context, driver Driver, field pages.FieldConfig) (any, error) {
	message := fieldMessage(field)
	kind, _ := model.ParseKind(field.Kind)

	switch kind {
	case model.KindSecureField:
		value, err := driver.Password(ctx, InputConfig{Message: message, Validator: requiredValidator(field.Required)})
		return emptyAsNil(value), err
	case model.KindToggle:
		return driver.Confirm(ctx, ConfirmConfig{Message: message})
	case model.KindPicker:
		return askPicker(ctx, driver, field, message)
	case model.KindTextEditor:
		value, err := driver.TextArea(ctx, TextAreaConfig{Message: message})
		return emptyAsNil(value), err
	case model.KindSlider, model.KindStepper:
		value, err := driver.Input(ctx, InputConfig{Message: message, Validator: numberValidator(field)})
		if err != nil || strings.TrimSpace(value) == "" {
			return nil, err
		}
		return strconv.ParseFloat(strings.TrimSpace(value), 64)
	case model.KindDatePicker:
		value, err := driver.Input(ctx, InputConfig{Message: message, Help: dateLayout, Validator: dateValidator(field.Required)})
		return emptyAsNil(value), err
	case model.KindMultiDatePicker:
		value, err := driver.Input(ctx, InputConfig{Message: message, Help: "comma separated " + dateLayout, Validator: datesValidator(field.Required)})
		if err != nil {
			return nil, err
		}
		dates := splitList(value)
		if len(dates) == 0 {
			return nil, nil
		}
		return dates, nil
	default:
		value, err := driver.Input(ctx, InputConfig{Message: message, Help: field.Prompt, Validator: requiredValidator(field.Required)})
		return emptyAsNil(value), err
	}
}

func askPicker(ctx context.Context, driver Driver, field pages.FieldConfig, message string) (any, error) {
	labels := make([]string, 0, len(field.Options)+1)
	offset := 0
	if !field.Required {
		labels = append(labels, "(none)")
		offset = 1
	}
	for _, option := range field.Options {
		labels = append(labels, option.Label)
	}
	idx, err := driver.Select(ctx, SelectConfig{Message: message, Options: labels, PageSize: 10})
	if err != nil {
		return nil, err
	}
	idx -= offset
	if idx < 0 || idx >= len(field.Options) {
		return nil, nil
	}
	return field.Options[idx].Value, nil
}

func fieldMessage(field pages.FieldConfig) string {
	label := strings.TrimSpace(field.Label)
	if label == "" {
		label = strings.TrimSpace(field.Prompt)
	}
	if label == "" {
		label = field.Name
	}
	if field.Required {
		label += " *"
	}
	return label
}

func requiredValidator(required bool) func(string) error {
	if !required {
		return nil
	}
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New("can't be blank")
		}
		return nil
	}
}

func numberValidator(field pages.FieldConfig) func(string) error {
	return func(value string) error {
		value = strings.TrimSpace(value)
		if value == "" {
			if field.Required {
				return errors.New("can't be blank")
			}
			return nil
		}
		number, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return errors.New("is not a number")
		}
		if field.Min != nil && number < *field.Min {
			return fmt.Errorf("must be greater than or equal to %v", *field.Min)
		}
		if field.Max != nil && number > *field.Max {
			return fmt.Errorf("must be less than or equal to %v", *field.Max)
		}
		return nil
	}
}

func dateValidator(required bool) func(string) error {
	return func(value string) error {
		value = strings.TrimSpace(value)
		if value == "" {
			if required {
				return errors.New("can't be blank")
			}
			return nil
		}
		if _, err := time.Parse(dateLayout, value); err != nil {
			return fmt.Errorf("must use the %s format", dateLayout)
		}
		return nil
	}
}

func datesValidator(required bool) func(string) error {
	single := dateValidator(false)
	return func(value string) error {
		dates := splitList(value)
		if len(dates) == 0 && required {
			return errors.New("can't be blank")
		}
		for _, date := range dates {
			if err := single(date); err != nil {
				return err
			}
		}
		return nil
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func emptyAsNil(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
