package controller

import (
	"errors"
	"net/http"
	"time"

	"trainforum/pkg/model"
	"trainforum/pkg/service"

	"github.com/gin-gonic/gin"
)

// RefreshTokenCookie is the HTTP-only cookie carrying the refresh token.
const RefreshTokenCookie = "RefreshToken"

type AuthController struct {
	authSvc model.AuthService
}

func NewAuthController(authSvc model.AuthService) *AuthController {
	return &AuthController{
		authSvc: authSvc,
	}
}

// Register godoc
// @Summary Register account
// @Description Creates a new forum account with the default Athlete role
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.Response "Account created"
// @Failure 400 {object} model.Response "Bad Request - Invalid body"
// @Failure 422 {object} model.Response "Unprocessable Entity - Username taken or credentials rejected"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/accounts [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var request model.RegisterRequest
	if err := c.ShouldBind(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.Response{
			Msg: err.Error(),
		})
		return
	}

	_, err := ctrl.authSvc.Register(c, request.UserName, request.Email, request.Password)
	switch {
	case errors.Is(err, model.ErrUsernameTaken):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, model.Response{
			Msg: "Username already taken",
		})
		return
	case errors.Is(err, model.ErrInvalidInput):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, model.Response{
			Msg: err.Error(),
		})
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Msg: "Internal error",
		})
		return
	}

	c.JSON(http.StatusCreated, model.Response{
		Msg: "Account created",
	})
}

// Login godoc
// @Summary Login
// @Description Verifies credentials, returns an access token and sets the refresh-token cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.SuccessfulLoginResponse "Access token issued"
// @Failure 400 {object} model.Response "Bad Request - Invalid body"
// @Failure 422 {object} model.Response "Unprocessable Entity - Unknown user or wrong password"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var request model.LoginRequest
	if err := c.ShouldBind(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, model.Response{
			Msg: err.Error(),
		})
		return
	}

	token, err := ctrl.authSvc.Login(c, request.UserName, request.Password)
	switch {
	case errors.Is(err, model.ErrUserNotFound):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, model.Response{
			Msg: "Username does not exist",
		})
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, model.Response{
			Msg: "Username or password is incorrect",
		})
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Msg: "Internal error",
		})
		return
	}

	setRefreshCookie(c, token)
	c.JSON(http.StatusOK, model.SuccessfulLoginResponse{
		AccessToken: token.AccessToken,
	})
}

// RefreshToken godoc
// @Summary Renew access token
// @Description Rotates the refresh token from the cookie and returns a fresh access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Success 200 {object} model.SuccessfulLoginResponse "New access token issued"
// @Failure 422 {object} model.Response "Unprocessable Entity - Cookie missing, invalid or subject unknown"
// @Failure 500 {object} model.Response "Internal Server Error"
// @Router /api/accessToken [post]
func (ctrl *AuthController) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshTokenCookie)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, model.Response{
			Msg: "Refresh token missing",
		})
		return
	}

	token, err := ctrl.authSvc.Refresh(c, refreshToken)
	switch {
	case errors.Is(err, service.ErrInvalidRefreshToken), errors.Is(err, model.ErrUserNotFound):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, model.Response{
			Msg: "Invalid refresh token",
		})
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
			Msg: "Internal error",
		})
		return
	}

	// Rotation: always the freshly minted token, never the presented one.
	setRefreshCookie(c, token)
	c.JSON(http.StatusOK, model.SuccessfulLoginResponse{
		AccessToken: token.AccessToken,
	})
}

// Logout godoc
// @Summary Logout
// @Description Clears the refresh-token cookie; no server-side state is kept
// @Tags Authentication
// @Produce json
// @Success 200 {object} model.Response "Logged out"
// @Router /api/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	c.JSON(http.StatusOK, model.Response{
		Msg: "Logged out",
	})
}

func setRefreshCookie(c *gin.Context, token *model.Token) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    token.RefreshToken,
		Path:     "/",
		Expires:  token.RefreshExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
