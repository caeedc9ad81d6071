package tokensvc

import (
	"testing"
	"time"

	"trainforum/pkg/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "test-secret"
	testIssuer   = "trainforum"
	testAudience = "trainforum-clients"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestService_AccessTokenRoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := New(testSecret, testIssuer, testAudience, WithClock(fixedClock(now)))

	tokenString, err := svc.CreateAccessToken("alice", "user-1", []string{model.RoleAthlete, model.RoleTrainer})
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, []string{model.RoleAthlete, model.RoleTrainer}, claims.Roles)
	assert.NotEmpty(t, claims.ID, "every access token carries a fresh jti")
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{testAudience}, claims.Audience)
	assert.WithinDuration(t, now.Add(AccessTokenTTL), claims.ExpiresAt.Time, time.Second)
}

func TestService_AccessTokenJTIUnique(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := New(testSecret, testIssuer, testAudience, WithClock(fixedClock(now)))

	first, err := svc.CreateAccessToken("alice", "user-1", nil)
	require.NoError(t, err)
	second, err := svc.CreateAccessToken("alice", "user-1", nil)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "identical mint inputs still yield distinct tokens")
}

func TestService_RefreshTokenRoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := New(testSecret, testIssuer, testAudience, WithClock(fixedClock(now)))

	expiresAt := now.Add(RefreshTokenTTL)
	tokenString, err := svc.CreateRefreshToken("user-1", expiresAt)
	require.NoError(t, err)

	claims, err := svc.ParseRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
}

func TestService_ParseRefreshTokenHardening(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := New(testSecret, testIssuer, testAudience, WithClock(fixedClock(now)))

	valid, err := svc.CreateRefreshToken("user-1", now.Add(RefreshTokenTTL))
	require.NoError(t, err)

	otherKey := New("some-other-secret", testIssuer, testAudience, WithClock(fixedClock(now)))
	forged, err := otherKey.CreateRefreshToken("user-1", now.Add(RefreshTokenTTL))
	require.NoError(t, err)

	wrongIssuer := New(testSecret, "someone-else", testAudience, WithClock(fixedClock(now)))
	misIssued, err := wrongIssuer.CreateRefreshToken("user-1", now.Add(RefreshTokenTTL))
	require.NoError(t, err)

	wrongAudience := New(testSecret, testIssuer, "other-clients", WithClock(fixedClock(now)))
	misAddressed, err := wrongAudience.CreateRefreshToken("user-1", now.Add(RefreshTokenTTL))
	require.NoError(t, err)

	noneToken := jwt.NewWithClaims(jwt.SigningMethodNone, &model.JWTRefreshCustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(RefreshTokenTTL)),
		},
	})
	unsigned, err := noneToken.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty input", token: ""},
		{name: "garbage input", token: "not-a-jwt-at-all"},
		{name: "truncated token", token: valid[:len(valid)/2]},
		{name: "signature stripped", token: valid[:len(valid)-10]},
		{name: "wrong signing key", token: forged},
		{name: "wrong issuer", token: misIssued},
		{name: "wrong audience", token: misAddressed},
		{name: "alg none", token: unsigned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ParseRefreshToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestService_ExpiredTokensRejected(t *testing.T) {
	minted := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	issuing := New(testSecret, testIssuer, testAudience, WithClock(fixedClock(minted)))

	accessToken, err := issuing.CreateAccessToken("alice", "user-1", nil)
	require.NoError(t, err)
	refreshToken, err := issuing.CreateRefreshToken("user-1", minted.Add(RefreshTokenTTL))
	require.NoError(t, err)

	tests := []struct {
		name      string
		at        time.Time
		wantValid bool
	}{
		{name: "just before access expiry", at: minted.Add(AccessTokenTTL - time.Second), wantValid: true},
		{name: "after access expiry", at: minted.Add(AccessTokenTTL + time.Second), wantValid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			later := New(testSecret, testIssuer, testAudience, WithClock(fixedClock(tt.at)))
			_, err := later.ParseAccessToken(accessToken)
			if tt.wantValid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}

	// The refresh token outlives the access token minted alongside it.
	later := New(testSecret, testIssuer, testAudience, WithClock(fixedClock(minted.Add(24*time.Hour))))
	_, err = later.ParseRefreshToken(refreshToken)
	assert.NoError(t, err)

	expired := New(testSecret, testIssuer, testAudience, WithClock(fixedClock(minted.Add(RefreshTokenTTL+time.Second))))
	_, err = expired.ParseRefreshToken(refreshToken)
	assert.Error(t, err)
}
