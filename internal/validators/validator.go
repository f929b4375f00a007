// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the process-wide validator instance. It caches struct
// metadata, so it is built once and shared.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})

		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})

	return validate
}

// ValidateStruct validates s by its `validate` tags. When fields are given,
// only errors of those (json-named) fields are reported.
func ValidateStruct(s any, fields ...string) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	result := &ValidationError{}
	for _, fe := range validationErrs {
		if len(fields) > 0 && !slices.Contains(fields, fe.Field()) {
			continue
		}
		result.Fields = append(result.Fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: translateError(fe, subjectOf(fe)),
		})
	}

	if len(result.Fields) == 0 {
		return nil
	}
	return result
}

// ValidateVar validates a single value against tag and reports it under field.
// subject is the human readable name used in the message.
func ValidateVar(value any, tag, field, subject string) *FieldError {
	err := getValidator().Var(value, tag)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return &FieldError{Field: field, Tag: "invalid", Message: fmt.Sprintf("%s is invalid", subject)}
	}

	fe := validationErrs[0]
	return &FieldError{Field: field, Tag: fe.Tag(), Message: translateError(fe, subject)}
}

// subjects overrides the message subject of well-known request fields.
var subjects = map[string]string{
	"CategoryRequest.name":  "Category name",
	"TagRequest.name":       "Tag name",
	"ActivityRequest.title": "Activity title",
	"RegisterRequest.email": "Email",
}

func subjectOf(fe validator.FieldError) string {
	if subject, ok := subjects[fe.Namespace()]; ok {
		return subject
	}
	return fe.Field()
}

var errorMessageTemplates = map[string]string{
	"required": "%s is required",
	"notblank": "%s is required",
	"email":    "%s must be a valid email address",
	"hexcolor": "%s must be a valid hex color",
}

var stringLengthTemplates = map[string]string{
	"min": "%s must be at least %s characters long",
	"max": "%s must be at most %s characters long",
	"len": "%s must be exactly %s characters long",
}

var errorMessageWithParam = map[string]string{
	"min": "%s must be greater than or equal to %s",
	"max": "%s must be less than or equal to %s",
	"gt":  "%s must be greater than %s",
	"gte": "%s must be greater than or equal to %s",
	"lt":  "%s must be less than %s",
	"lte": "%s must be less than or equal to %s",
}

func translateError(fe validator.FieldError, subject string) string {
	tag := fe.Tag()

	if template, ok := errorMessageTemplates[tag]; ok {
		return fmt.Sprintf(template, subject)
	}

	if fe.Kind() == reflect.String {
		if template, ok := stringLengthTemplates[tag]; ok {
			return fmt.Sprintf(template, subject, fe.Param())
		}
	}

	if template, ok := errorMessageWithParam[tag]; ok {
		return fmt.Sprintf(template, subject, fe.Param())
	}

	return fmt.Sprintf("%s is invalid", subject)
}
