package service

import (
	"context"
	"testing"
	"time"

	tokensvc "trainforum/internal/token"
	"trainforum/pkg/inmem"
	"trainforum/pkg/model"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClock is a settable time source shared by the fixtures; rotating tokens
// at distinct instants keeps the minted strings distinguishable.
type testClock struct {
	at time.Time
}

func (c *testClock) Now() time.Time { return c.at }

func (c *testClock) Advance(d time.Duration) { c.at = c.at.Add(d) }

func newAuthFixture(t *testing.T) (model.AuthService, *inmem.UserStore, *tokensvc.Service, *testClock) {
	t.Helper()
	clock := &testClock{at: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	tokens := tokensvc.New("test-secret", "trainforum", "trainforum-clients", tokensvc.WithClock(clock.Now))
	store, err := inmem.NewUserStore()
	require.NoError(t, err)
	return NewAuthService(store, tokens), store, tokens, clock
}

func TestAuthService_Register(t *testing.T) {
	auth, store, _, _ := newAuthFixture(t)
	ctx := context.Background()

	username := faker.Username()
	user, err := auth.Register(ctx, username, faker.Email(), "secret-password")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)

	roles, err := store.GetRoles(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, []string{model.RoleAthlete}, roles, "a fresh account holds exactly the default role")

	_, err = auth.Register(ctx, username, faker.Email(), "secret-password")
	assert.ErrorIs(t, err, model.ErrUsernameTaken)
}

func TestAuthService_Login(t *testing.T) {
	auth, _, tokens, _ := newAuthFixture(t)
	ctx := context.Background()

	username := faker.Username()
	_, err := auth.Register(ctx, username, faker.Email(), "secret-password")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "unknown username", username: "nobody", password: "secret-password", wantErr: model.ErrUserNotFound},
		{name: "wrong password", username: username, password: "wrong-password", wantErr: ErrInvalidCredentials},
		{name: "valid credentials", username: username, password: "secret-password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := auth.Login(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, token)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, token)

			claims, err := tokens.ParseAccessToken(token.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, username, claims.Name)
			assert.Equal(t, []string{model.RoleAthlete}, claims.Roles)

			refreshClaims, err := tokens.ParseRefreshToken(token.RefreshToken)
			require.NoError(t, err)
			assert.Equal(t, claims.Subject, refreshClaims.Subject, "both tokens name the same account")
			assert.WithinDuration(t, token.RefreshExpiresAt, refreshClaims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestAuthService_RefreshRotatesTokens(t *testing.T) {
	auth, _, tokens, clock := newAuthFixture(t)
	ctx := context.Background()

	username := faker.Username()
	_, err := auth.Register(ctx, username, faker.Email(), "secret-password")
	require.NoError(t, err)

	session, err := auth.Login(ctx, username, "secret-password")
	require.NoError(t, err)

	clock.Advance(time.Minute)
	rotated, err := auth.Refresh(ctx, session.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken, "refresh replaces the presented token")
	assert.NotEqual(t, session.AccessToken, rotated.AccessToken)

	claims, err := tokens.ParseRefreshToken(rotated.RefreshToken)
	require.NoError(t, err)
	assert.WithinDuration(t, clock.Now().Add(tokensvc.RefreshTokenTTL), claims.ExpiresAt.Time, time.Second, "expiry window restarts on rotation")
}

func TestAuthService_RefreshRereadsRoles(t *testing.T) {
	clock := &testClock{at: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	tokens := tokensvc.New("test-secret", "trainforum", "trainforum-clients", tokensvc.WithClock(clock.Now))
	store, err := inmem.NewUserStore()
	require.NoError(t, err)
	roleStore := &mutableRoleStore{UserStore: store, roles: []string{model.RoleAthlete}}
	auth := NewAuthService(roleStore, tokens)
	ctx := context.Background()

	username := faker.Username()
	_, err = auth.Register(ctx, username, faker.Email(), "secret-password")
	require.NoError(t, err)

	session, err := auth.Login(ctx, username, "secret-password")
	require.NoError(t, err)

	// Role granted after login must show up on the next rotation.
	roleStore.roles = []string{model.RoleAthlete, model.RoleTrainer}
	clock.Advance(time.Minute)

	rotated, err := auth.Refresh(ctx, session.RefreshToken)
	require.NoError(t, err)
	claims, err := tokens.ParseAccessToken(rotated.AccessToken)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{model.RoleAthlete, model.RoleTrainer}, claims.Roles)
}

func TestAuthService_RefreshRejectsBadTokens(t *testing.T) {
	auth, _, tokens, clock := newAuthFixture(t)
	ctx := context.Background()

	orphaned, err := tokens.CreateRefreshToken(uuid.New().String(), clock.Now().Add(tokensvc.RefreshTokenTTL))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "garbage token", token: "definitely-not-a-jwt", wantErr: ErrInvalidRefreshToken},
		{name: "empty token", token: "", wantErr: ErrInvalidRefreshToken},
		{name: "subject no longer exists", token: orphaned, wantErr: model.ErrUserNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := auth.Refresh(ctx, tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, token)
		})
	}
}

// mutableRoleStore lets a test change role assignments between requests.
type mutableRoleStore struct {
	model.UserStore
	roles []string
}

func (s *mutableRoleStore) GetRoles(context.Context, *model.ForumUser) ([]string, error) {
	return s.roles, nil
}
