package model

import "github.com/golang-jwt/jwt/v5"

type Identity struct {
	UserID   string   `json:"user_id"`
	UserName string   `json:"user_name"`
	Roles    []string `json:"roles"`
}

// JWTAccessCustomClaims is the access-token claim set: subject, jti, the
// username and one role entry per assignment.
type JWTAccessCustomClaims struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// JWTRefreshCustomClaims is the refresh-token claim set. It deliberately
// carries no role or name claims, so a refresh token is useless on routes
// that expect an access token.
type JWTRefreshCustomClaims struct {
	jwt.RegisteredClaims
}
