package service

import (
	"context"
	"errors"

	tokensvc "trainforum/internal/token"
	"trainforum/pkg/model"
)

var (
	// ErrInvalidCredentials is returned on a password mismatch, 422
	ErrInvalidCredentials = errors.New("username or password is incorrect")
	// ErrInvalidRefreshToken collapses every refresh-token failure mode, 422
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// AuthServiceImpl orchestrates the credential store and the token service.
// It holds no mutable state of its own.
type AuthServiceImpl struct {
	users  model.UserStore
	tokens *tokensvc.Service
}

func NewAuthService(users model.UserStore, tokens *tokensvc.Service) model.AuthService {
	return &AuthServiceImpl{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a new account and assigns it the default Athlete role.
// The role is bound to the identity the store actually persisted, and the
// store's own uniqueness constraint backs the pre-check under concurrency.
func (s *AuthServiceImpl) Register(ctx context.Context, username, email, password string) (*model.ForumUser, error) {
	_, err := s.users.FindByName(ctx, username)
	switch {
	case err == nil:
		return nil, model.ErrUsernameTaken
	case !errors.Is(err, model.ErrUserNotFound):
		return nil, err
	}

	user := &model.ForumUser{
		UserName: username,
		Email:    email,
	}
	if err := s.users.Create(ctx, user, password, model.RoleAthlete); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the password and mints a fresh token pair.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*model.Token, error) {
	user, err := s.users.FindByName(ctx, username)
	if err != nil {
		return nil, err
	}
	if !s.users.CheckPassword(ctx, user, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issueTokens(ctx, user)
}

// Refresh rotates a presented refresh token: the subject is re-resolved, the
// roles re-read (assignments may have changed since login) and both tokens
// re-minted. The caller must deliver the new refresh token, not the old one.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*model.Token, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, user *model.ForumUser) (*model.Token, error) {
	roles, err := s.users.GetRoles(ctx, user)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.CreateAccessToken(user.UserName, user.ID, roles)
	if err != nil {
		return nil, err
	}

	refreshExp := s.tokens.Now().Add(tokensvc.RefreshTokenTTL)
	refreshToken, err := s.tokens.CreateRefreshToken(user.ID, refreshExp)
	if err != nil {
		return nil, err
	}

	return &model.Token{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
	}, nil
}
