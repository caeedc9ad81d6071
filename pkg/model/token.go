package model

import (
	"context"
	"time"
)

// Token is an access/refresh pair minted for one authenticated subject.
type Token struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	RefreshExpiresAt time.Time
}

// SuccessfulLoginResponse is the login/renewal body; the refresh token
// travels only in the cookie.
type SuccessfulLoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// AuthService is the session flow: registration, login and access-token
// renewal with refresh-token rotation.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*ForumUser, error)
	Login(ctx context.Context, username, password string) (*Token, error)
	Refresh(ctx context.Context, refreshToken string) (*Token, error)
}
