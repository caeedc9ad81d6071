package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tokensvc "trainforum/internal/token"
	"trainforum/pkg/inmem"
	"trainforum/pkg/model"
	"trainforum/pkg/service"

	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionClock struct {
	at time.Time
}

func (c *sessionClock) Now() time.Time { return c.at }

func bootAuth(t *testing.T) (*gin.Engine, *sessionClock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := &sessionClock{at: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	tokens := tokensvc.New("test-secret", "trainforum", "trainforum-clients", tokensvc.WithClock(clock.Now))
	store, err := inmem.NewUserStore()
	require.NoError(t, err)
	authController := NewAuthController(service.NewAuthService(store, tokens))

	engine := gin.New()
	api := engine.Group("/api")
	api.POST("/accounts", authController.Register)
	api.POST("/login", authController.Login)
	api.POST("/accessToken", authController.RefreshToken)
	api.POST("/logout", authController.Logout)
	return engine, clock
}

func postJSON(engine *gin.Engine, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func refreshCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == RefreshTokenCookie {
			return cookie
		}
	}
	t.Fatalf("response carries no %s cookie: %s", RefreshTokenCookie, spew.Sdump(w.Result().Header))
	return nil
}

func TestAuthController_Register(t *testing.T) {
	engine, _ := bootAuth(t)
	username := faker.Username()

	tests := []struct {
		name         string
		body         any
		expectStatus int
		expectMsg    string
	}{
		{
			name:         "valid registration",
			body:         model.RegisterRequest{UserName: username, Email: "athlete@example.com", Password: "secret-password"},
			expectStatus: http.StatusCreated,
			expectMsg:    "Account created",
		},
		{
			name:         "duplicate username",
			body:         model.RegisterRequest{UserName: username, Email: "other@example.com", Password: "secret-password"},
			expectStatus: http.StatusUnprocessableEntity,
			expectMsg:    "Username already taken",
		},
		{
			name:         "invalid email",
			body:         model.RegisterRequest{UserName: faker.Username(), Email: "not-an-email", Password: "secret-password"},
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "weak password",
			body:         model.RegisterRequest{UserName: faker.Username(), Email: "weak@example.com", Password: "short"},
			expectStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(engine, "/api/accounts", tt.body)
			assert.Equal(t, tt.expectStatus, w.Code)
			if tt.expectMsg != "" {
				var resp model.Response
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectMsg, resp.Msg)
			}
		})
	}
}

func TestAuthController_Login(t *testing.T) {
	engine, clock := bootAuth(t)
	username := faker.Username()

	w := postJSON(engine, "/api/accounts", model.RegisterRequest{
		UserName: username, Email: "athlete@example.com", Password: "secret-password",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("unknown username", func(t *testing.T) {
		w := postJSON(engine, "/api/login", model.LoginRequest{UserName: "nobody", Password: "secret-password"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var resp model.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Username does not exist", resp.Msg)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := postJSON(engine, "/api/login", model.LoginRequest{UserName: username, Password: "wrong-password"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var resp model.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Username or password is incorrect", resp.Msg)
	})

	t.Run("valid credentials", func(t *testing.T) {
		w := postJSON(engine, "/api/login", model.LoginRequest{UserName: username, Password: "secret-password"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp model.SuccessfulLoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)

		cookie := refreshCookie(t, w)
		assert.NotEmpty(t, cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, "/", cookie.Path)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.WithinDuration(t, clock.Now().Add(tokensvc.RefreshTokenTTL), cookie.Expires, time.Second)
	})
}

func TestAuthController_RefreshToken(t *testing.T) {
	engine, clock := bootAuth(t)
	username := faker.Username()

	w := postJSON(engine, "/api/accounts", model.RegisterRequest{
		UserName: username, Email: "athlete@example.com", Password: "secret-password",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(engine, "/api/login", model.LoginRequest{UserName: username, Password: "secret-password"})
	require.Equal(t, http.StatusOK, w.Code)
	var login model.SuccessfulLoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	loginCookie := refreshCookie(t, w)

	t.Run("missing cookie", func(t *testing.T) {
		w := postJSON(engine, "/api/accessToken", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var resp model.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Refresh token missing", resp.Msg)
	})

	t.Run("garbage cookie", func(t *testing.T) {
		w := postJSON(engine, "/api/accessToken", nil, &http.Cookie{Name: RefreshTokenCookie, Value: "garbage"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var resp model.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid refresh token", resp.Msg)
	})

	t.Run("valid cookie rotates the pair", func(t *testing.T) {
		clock.at = clock.at.Add(time.Minute)

		w := postJSON(engine, "/api/accessToken", nil, loginCookie)
		require.Equal(t, http.StatusOK, w.Code)

		var refreshed model.SuccessfulLoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refreshed))
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.NotEqual(t, login.AccessToken, refreshed.AccessToken)

		rotated := refreshCookie(t, w)
		assert.NotEqual(t, loginCookie.Value, rotated.Value, "the cookie carries the new refresh token")
		assert.True(t, rotated.Expires.After(loginCookie.Expires))
	})
}

func TestAuthController_Logout(t *testing.T) {
	engine, _ := bootAuth(t)

	w := postJSON(engine, "/api/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := refreshCookie(t, w)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()))
}
