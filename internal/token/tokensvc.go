package tokensvc

import (
	"fmt"
	"time"

	"trainforum/pkg/model"

	"github.com/google/uuid"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessTokenTTL bounds how long a stolen access token stays usable.
	AccessTokenTTL = 20 * time.Minute
	// RefreshTokenTTL is the conventional refresh-token lifetime; callers of
	// CreateRefreshToken supply the concrete expiry themselves.
	RefreshTokenTTL = 72 * time.Hour
)

// Service mints and parses the two bearer tokens. It holds configuration
// only, so one instance is shared across concurrent requests.
type Service struct {
	secret   []byte
	issuer   string
	audience string
	now      func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source; tests use it to pin expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(secret, issuer, audience string, opts ...Option) *Service {
	s := &Service{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now exposes the service clock so callers compute cookie expiries against
// the same time source the tokens are validated with.
func (s *Service) Now() time.Time {
	return s.now()
}

// CreateAccessToken signs a short-lived token carrying the subject, a fresh
// jti, the username and one claim entry per role.
func (s *Service) CreateAccessToken(username, userID string, roles []string) (string, error) {
	now := s.now()
	claims := &model.JWTAccessCustomClaims{
		Name:  username,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// CreateRefreshToken signs a minimal token: subject and expiry only. The same
// key signs both token kinds; the disjoint claim shape keeps a refresh token
// from standing in for an access token.
func (s *Service) CreateRefreshToken(userID string, expiresAt time.Time) (string, error) {
	claims := &model.JWTRefreshCustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// ParseAccessToken validates signature, method, issuer, audience and expiry.
func (s *Service) ParseAccessToken(tokenString string) (*model.JWTAccessCustomClaims, error) {
	claims := &model.JWTAccessCustomClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ParseRefreshToken validates an untrusted cookie value. Every failure mode
// (garbage input, bad signature, wrong algorithm, expiry) comes back as an
// error; nothing panics.
func (s *Service) ParseRefreshToken(tokenString string) (*model.JWTRefreshCustomClaims, error) {
	claims := &model.JWTRefreshCustomClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *Service) parse(tokenString string, claims jwt.Claims) error {
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok { // check signing method
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return err
	}
	if !tkn.Valid {
		return fmt.Errorf("token is not valid")
	}
	return nil
}
