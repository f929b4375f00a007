// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/activity-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrValidation)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	return vErr
}

// ─────────────────────────────────────────────
// Dispatch
// ─────────────────────────────────────────────

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), "a string")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_ValueAndPointerForms(t *testing.T) {
	v := NewRequestValidator()
	req := models.CategoryRequest{Name: "Work"}

	assert.NoError(t, v.Validate(context.Background(), req))
	assert.NoError(t, v.Validate(context.Background(), &req))
}

// ─────────────────────────────────────────────
// RegisterRequest
// ─────────────────────────────────────────────

func TestValidate_RegisterRequest(t *testing.T) {
	tests := []struct {
		name       string
		req        models.RegisterRequest
		wantFields []string
		wantMsg    string
	}{
		{
			name: "valid",
			req:  models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"},
		},
		{
			name:       "all missing",
			req:        models.RegisterRequest{},
			wantFields: []string{"username", "email", "password"},
			wantMsg:    "username is required",
		},
		{
			name:       "short username",
			req:        models.RegisterRequest{Username: "al", Email: "alice@example.com", Password: "secret1"},
			wantFields: []string{"username"},
			wantMsg:    "username must be at least 3 characters long",
		},
		{
			name:       "bad email",
			req:        models.RegisterRequest{Username: "alice", Email: "not-an-email", Password: "secret1"},
			wantFields: []string{"email"},
			wantMsg:    "Email must be a valid email address",
		},
		{
			name:       "short password",
			req:        models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "12345"},
			wantFields: []string{"password"},
			wantMsg:    "password must be at least 6 characters long",
		},
		{
			name:       "long username",
			req:        models.RegisterRequest{Username: strings.Repeat("a", 51), Email: "alice@example.com", Password: "secret1"},
			wantFields: []string{"username"},
			wantMsg:    "username must be at most 50 characters long",
		},
		{
			name:       "long password",
			req:        models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: strings.Repeat("p", 73)},
			wantFields: []string{"password"},
			wantMsg:    "password must be at most 72 characters long",
		},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)

			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			vErr := validationError(t, err)
			var got []string
			for _, f := range vErr.Fields {
				got = append(got, f.Field)
			}
			assert.Equal(t, tt.wantFields, got)
			assert.Contains(t, vErr.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_FieldScoping(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), models.RegisterRequest{Username: "alice"}, "username")
	assert.NoError(t, err)

	err = v.Validate(context.Background(), models.RegisterRequest{Username: "alice"}, "email")
	vErr := validationError(t, err)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "email", vErr.Fields[0].Field)
}

// ─────────────────────────────────────────────
// Label and activity requests
// ─────────────────────────────────────────────

func TestValidate_CategoryRequest_BlankName(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), models.CategoryRequest{Name: "   "})

	vErr := validationError(t, err)
	assert.Equal(t, "Category name is required", vErr.Error())
	assert.Equal(t, map[string]any{"fields": map[string]any{"name": "Category name is required"}}, vErr.Details())
}

func TestValidate_TagRequest_BadColor(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), models.TagRequest{Name: "urgent", Color: "blue"})

	vErr := validationError(t, err)
	assert.Equal(t, "color must be a valid hex color", vErr.Error())
}

func TestValidate_TagRequest_ValidColor(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), models.TagRequest{Name: "urgent", Color: "#FF0000"})
	assert.NoError(t, err)
}

func TestValidate_ActivityRequest_MissingTitle(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), &models.ActivityRequest{Description: "x"})

	vErr := validationError(t, err)
	assert.Equal(t, "Activity title is required", vErr.Error())
}

func TestValidate_TimelineRequest(t *testing.T) {
	v := NewRequestValidator()

	for _, days := range []int{1, 30, 365} {
		assert.NoError(t, v.Validate(context.Background(), models.TimelineRequest{Days: days}), "days=%d", days)
	}

	for _, days := range []int{0, -1, 366} {
		err := v.Validate(context.Background(), models.TimelineRequest{Days: days})
		vErr := validationError(t, err)
		assert.Equal(t, "days", vErr.Fields[0].Field)
	}
}

// ─────────────────────────────────────────────
// Patches
// ─────────────────────────────────────────────

func TestValidate_CategoryPatch(t *testing.T) {
	v := NewRequestValidator()

	t.Run("absent fields pass", func(t *testing.T) {
		assert.NoError(t, v.Validate(context.Background(), models.CategoryPatch{}))
	})

	t.Run("empty name", func(t *testing.T) {
		err := v.Validate(context.Background(), models.CategoryPatch{Name: models.Some("")})
		vErr := validationError(t, err)
		assert.Equal(t, "Category name cannot be empty", vErr.Error())
	})

	t.Run("null name", func(t *testing.T) {
		err := v.Validate(context.Background(), &models.CategoryPatch{Name: models.Null[string]()})
		vErr := validationError(t, err)
		assert.Equal(t, "name", vErr.Fields[0].Field)
	})

	t.Run("too long name", func(t *testing.T) {
		err := v.Validate(context.Background(), models.CategoryPatch{Name: models.Some(strings.Repeat("x", 101))})
		vErr := validationError(t, err)
		assert.Equal(t, "Category name must be at most 100 characters long", vErr.Error())
	})

	t.Run("bad color", func(t *testing.T) {
		err := v.Validate(context.Background(), models.CategoryPatch{Color: models.Some("nope")})
		vErr := validationError(t, err)
		assert.Equal(t, "color", vErr.Fields[0].Field)
	})

	t.Run("null color passes", func(t *testing.T) {
		assert.NoError(t, v.Validate(context.Background(), models.CategoryPatch{Color: models.Null[string]()}))
	})
}

func TestValidate_TagPatch_EmptyName(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), models.TagPatch{Name: models.Some(" ")})

	vErr := validationError(t, err)
	assert.Equal(t, "Tag name cannot be empty", vErr.Error())
}

func TestValidate_ActivityPatch(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.ActivityPatch{
		Title:      models.Some("Run"),
		CategoryID: models.Null[int64](),
		TagIDs:     models.Some([]int64{}),
	}))

	err := v.Validate(context.Background(), &models.ActivityPatch{Title: models.Some("")})
	vErr := validationError(t, err)
	assert.Equal(t, "Activity title cannot be empty", vErr.Error())
}

// ─────────────────────────────────────────────
// ValidationError
// ─────────────────────────────────────────────

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("tag_ids", "Invalid tag ID: 7")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Invalid tag ID: 7", err.Error())
	assert.Equal(t, map[string]any{"fields": map[string]any{"tag_ids": "Invalid tag ID: 7"}}, err.Details())
}

func TestValidationError_EmptyFields(t *testing.T) {
	err := &ValidationError{}
	assert.Equal(t, "validation failed", err.Error())
}
