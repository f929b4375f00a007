// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/activity-tracker/internal/config"
	"github.com/MKhiriev/activity-tracker/internal/logger"
	"github.com/MKhiriev/activity-tracker/internal/store"
	"github.com/MKhiriev/activity-tracker/internal/utils"
	"github.com/MKhiriev/activity-tracker/models"
)

// authService is the concrete implementation of AuthService.
// It stores bcrypt password hashes and issues opaque, server-side sessions.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository

	// sessionTTL controls how long a newly issued session remains valid.
	sessionTTL time.Duration

	// bcryptCost is the work factor used when hashing passwords.
	bcryptCost int

	// now and newToken are replaced in tests.
	now      func() time.Time
	newToken func() (string, error)

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the user and session
// repositories and populated with the security parameters from cfg.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		sessionTTL:        cfg.SessionTTL,
		bcryptCost:        cfg.BcryptCost,
		now:               time.Now,
		newToken:          utils.GenerateSessionToken,
		logger:            logger,
	}
}

// Register creates a new account.
//
// Username uniqueness is checked before email uniqueness. A unique violation
// raised by the store (a concurrent registration) maps to the same errors.
// The plaintext password is hashed with bcrypt and discarded.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	exists, err := a.userRepository.UsernameExists(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("username lookup failed")
		return models.User{}, fmt.Errorf("username lookup failed: %w", err)
	}
	if exists {
		return models.User{}, ErrDuplicateUsername
	}

	exists, err = a.userRepository.EmailExists(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("email lookup failed")
		return models.User{}, fmt.Errorf("email lookup failed: %w", err)
	}
	if exists {
		return models.User{}, ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	switch {
	case errors.Is(err, store.ErrUsernameTaken):
		return models.User{}, fmt.Errorf("%w: %w", ErrDuplicateUsername, err)
	case errors.Is(err, store.ErrEmailTaken):
		return models.User{}, fmt.Errorf("%w: %w", ErrDuplicateEmail, err)
	case err != nil:
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login authenticates the user and opens a new session.
// An unknown username and a wrong password produce the same error.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, strings.TrimSpace(req.Username))
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("username", req.Username).Msg("login for unknown user")
		return models.LoginResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.LoginResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		log.Debug().Int64("user_id", user.ID).Msg("wrong password")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := a.newToken()
	if err != nil {
		log.Err(err).Msg("session token generation failed")
		return models.LoginResponse{}, fmt.Errorf("session token generation failed: %w", err)
	}

	now := a.now().UTC()
	session := models.Session{
		ID:        token,
		UserID:    user.ID,
		ExpiresAt: now.Add(a.sessionTTL),
		CreatedAt: now,
	}
	if err = a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("session creation failed")
		return models.LoginResponse{}, fmt.Errorf("session creation failed: %w", err)
	}

	return models.LoginResponse{
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
		User:      user,
	}, nil
}

// ResolveSession returns the owner of a live session.
func (a *authService) ResolveSession(ctx context.Context, sessionID string) (models.User, error) {
	log := logger.FromContext(ctx)

	session, err := a.liveSession(ctx, sessionID)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, session.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrInvalidSession
	}
	if err != nil {
		log.Err(err).Int64("user_id", session.UserID).Msg("session owner lookup failed")
		return models.User{}, fmt.Errorf("session owner lookup failed: %w", err)
	}

	return user, nil
}

// Logout deletes the session. Logging out twice with the same token fails
// the second time.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if _, err := a.liveSession(ctx, sessionID); err != nil {
		return err
	}

	deleted, err := a.sessionRepository.DeleteSession(ctx, sessionID)
	if err != nil {
		log.Err(err).Msg("session deletion failed")
		return fmt.Errorf("session deletion failed: %w", err)
	}
	if !deleted {
		return ErrInvalidSession
	}

	return nil
}

// CurrentUser returns the user resolved by the auth middleware.
func (a *authService) CurrentUser(ctx context.Context) (models.User, error) {
	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		return models.User{}, ErrInvalidSession
	}
	return user, nil
}

// liveSession loads a session and deletes it when it has expired.
func (a *authService) liveSession(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if sessionID == "" {
		return models.Session{}, ErrInvalidSession
	}

	session, err := a.sessionRepository.FindSession(ctx, sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrInvalidSession
	}
	if err != nil {
		log.Err(err).Msg("session lookup failed")
		return models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.IsExpired(a.now()) {
		if _, err = a.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
			log.Err(err).Int64("user_id", session.UserID).Msg("expired session deletion failed")
		}
		return models.Session{}, ErrInvalidSession
	}

	return session, nil
}
