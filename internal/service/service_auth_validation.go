package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/activity-tracker/internal/validators"
	"github.com/MKhiriev/activity-tracker/models"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// AuthValidationService validates registration and login payloads before
// they reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

// Register trims username and email before validating them, so length rules
// apply to the stored values.
func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error during registration validation: %w", err)
	}
	// the tag counts characters, bcrypt counts bytes
	if len(req.Password) > maxPasswordBytes {
		err := &validators.ValidationError{Fields: []validators.FieldError{{
			Field:   "password",
			Tag:     "max",
			Message: fmt.Sprintf("password must be at most %d bytes long", maxPasswordBytes),
		}}}
		return models.User{}, fmt.Errorf("error during registration validation: %w", err)
	}
	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	req.Username = strings.TrimSpace(req.Username)

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.LoginResponse{}, fmt.Errorf("error during login validation: %w", err)
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) ResolveSession(ctx context.Context, sessionID string) (models.User, error) {
	return v.inner.ResolveSession(ctx, sessionID)
}

func (v *AuthValidationService) Logout(ctx context.Context, sessionID string) error {
	return v.inner.Logout(ctx, sessionID)
}

func (v *AuthValidationService) CurrentUser(ctx context.Context) (models.User, error) {
	return v.inner.CurrentUser(ctx)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
