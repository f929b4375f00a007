package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/activity-tracker/models"
)

// RequestValidator validates the request models accepted by the services.
// Struct-shaped requests are checked by their `validate` tags; patch requests
// are checked field by field, only for the fields that are present.
type RequestValidator struct{}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Optional fields restrict validation to the named
// (json) fields.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest, *models.RegisterRequest,
		models.LoginRequest, *models.LoginRequest,
		models.CategoryRequest, *models.CategoryRequest,
		models.TagRequest, *models.TagRequest,
		models.ActivityRequest, *models.ActivityRequest,
		models.TimelineRequest, *models.TimelineRequest:
		return ValidateStruct(value, fields...)

	case models.CategoryPatch:
		return v.validateLabelPatch("Category", value.Name, value.Color)
	case *models.CategoryPatch:
		return v.validateLabelPatch("Category", value.Name, value.Color)

	case models.TagPatch:
		return v.validateLabelPatch("Tag", value.Name, value.Color)
	case *models.TagPatch:
		return v.validateLabelPatch("Tag", value.Name, value.Color)

	case models.ActivityPatch:
		return v.validateActivityPatch(value)
	case *models.ActivityPatch:
		return v.validateActivityPatch(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateLabelPatch(entity string, name, color models.Optional[string]) error {
	result := &ValidationError{}

	if name.Set {
		value, ok := name.Get()
		if !ok || strings.TrimSpace(value) == "" {
			result.Fields = append(result.Fields, FieldError{
				Field:   "name",
				Tag:     "notblank",
				Message: entity + " name cannot be empty",
			})
		} else if fe := ValidateVar(value, "max=100", "name", entity+" name"); fe != nil {
			result.Fields = append(result.Fields, *fe)
		}
	}

	if value, ok := color.Get(); ok {
		if fe := ValidateVar(value, "omitempty,hexcolor", "color", "color"); fe != nil {
			result.Fields = append(result.Fields, *fe)
		}
	}

	return result.orNil()
}

func (v *RequestValidator) validateActivityPatch(patch models.ActivityPatch) error {
	result := &ValidationError{}

	if patch.Title.Set {
		value, ok := patch.Title.Get()
		if !ok || strings.TrimSpace(value) == "" {
			result.Fields = append(result.Fields, FieldError{
				Field:   "title",
				Tag:     "notblank",
				Message: "Activity title cannot be empty",
			})
		} else if fe := ValidateVar(value, "max=255", "title", "Activity title"); fe != nil {
			result.Fields = append(result.Fields, *fe)
		}
	}

	return result.orNil()
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
