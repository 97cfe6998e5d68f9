// Package service implements the application's business operations on top
// of the storage layer: registration, login, token refresh and
// ownership-scoped expense CRUD.
package service

import (
	"context"
	"errors"
	"log/slog"

	"expenses/internal/auth"
	"expenses/internal/models"
	"expenses/internal/storage"
	"expenses/internal/validation"
)

// TokenPair is the response body of a successful login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService handles registration, login and access-token refresh.
type AuthService struct {
	store  storage.Store
	tokens *auth.JWTManager
	logger *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(store storage.Store, tokens *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:  store,
		tokens: tokens,
		logger: logger,
	}
}

// Register validates the request body, checks username uniqueness, hashes
// the password and persists a new user. Validation reports every violated
// field; the uniqueness check runs only when the username itself is
// structurally valid. Nothing is persisted on failure.
func (s *AuthService) Register(ctx context.Context, raw map[string]any) (*models.User, error) {
	creds, errs := validation.UserCredentials(raw)

	if _, invalid := errs["username"]; !invalid {
		existing, err := s.store.GetUserByUsername(ctx, creds.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			errs.Add("username", validation.MsgUsernameTaken)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     creds.Username,
		PasswordHash: hash,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		// Two concurrent registrations can pass the lookup above; the
		// store's unique index decides the race.
		if errors.Is(err, storage.ErrDuplicateUsername) {
			return nil, validation.Errors{"username": {validation.MsgUsernameTaken}}
		}
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login verifies the credentials and issues an access/refresh token pair
// carrying the user's id. Unknown usernames and wrong passwords produce the
// identical ErrIncorrectCredentials.
func (s *AuthService) Login(ctx context.Context, raw map[string]any) (*TokenPair, error) {
	creds, errs := validation.UserCredentials(raw)
	if len(errs) > 0 {
		return nil, errs
	}

	user, err := s.store.GetUserByUsername(ctx, creds.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, creds.Password) {
		s.logger.Warn("login failed", "username", creds.Username)
		return nil, ErrIncorrectCredentials
	}

	access, err := s.tokens.GenerateAccess(user.ID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefresh(user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh issues a new access token for the identity carried by a refresh
// token. Presenting an access token here fails with ErrNotRefreshToken;
// the refresh token itself is not rotated or invalidated.
func (s *AuthService) Refresh(ctx context.Context, claims *auth.Claims) (string, error) {
	if claims.TokenType != auth.TokenTypeRefresh {
		return "", auth.ErrNotRefreshToken
	}

	userID, err := claims.UserID()
	if err != nil {
		return "", err
	}
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", auth.ErrInvalidToken
	}

	s.logger.Info("access token refreshed", "user_id", user.ID)
	return s.tokens.GenerateAccess(user.ID)
}
