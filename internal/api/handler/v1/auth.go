package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/restodesk/backoffice/internal/api/handler/v1/request"
	"github.com/restodesk/backoffice/internal/api/handler/v1/response"
	"github.com/restodesk/backoffice/internal/api/middleware"
	"github.com/restodesk/backoffice/internal/config"
	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/pkg/jwthelper"
	"github.com/restodesk/backoffice/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	Logout(ctx context.Context, tokenID string, remaining time.Duration) error
}

type AuthHandler struct {
	conf  *config.APIConfig
	svc   AuthService
	users middleware.UserLoader
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService, users middleware.UserLoader) *AuthHandler {
	return &AuthHandler{
		conf:  conf,
		svc:   svc,
		users: users,
	}
}

// HandleSignup godoc
// @Summary      Create a back-office operator
// @Tags         auth
// @Produce      json
// @Param        request   body      request.SignupRequest true "request body"
// @Success      201      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/signup [post]
// @Security     BearerAuth
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := h.svc.Signup(ctx.Request.Context(), domain.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		renderServiceErr(ctx, "v1.HandleSignup -> h.svc.Signup", err)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// HandleLogin godoc
// @Summary      Login an operator
// @Description  Returns a bearer token and sets it as the auth_token cookie. With remember_me the cookie outlives the browser session.
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, ctx.Request.UserAgent(), h.conf.TokenTTL)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	// A zero max age makes a session cookie.
	maxAge := 0
	if req.RememberMe {
		maxAge = int(h.conf.TokenTTL.Seconds())
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(response.AuthCookie, token, maxAge, "/", "", h.conf.Environment == "production", true)

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(h.conf.TokenTTL).UTC(),
		User:      user,
	})
}

// HandleLogout godoc
// @Summary      Revoke the current token
// @Tags         auth
// @Success      204
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	claims, ok := middleware.Claims(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(jwthelper.ErrInvalidToken))
		return
	}

	if err := h.svc.Logout(ctx.Request.Context(), claims.ID, claims.RemainingTTL(time.Now())); err != nil {
		err = fmt.Errorf("v1.HandleLogout -> h.svc.Logout -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	response.ClearAuthCookie(ctx)
	ctx.Status(http.StatusNoContent)
}

// HandleMe godoc
// @Summary      Get the authenticated operator
// @Tags         auth
// @Produce      json
// @Success      200      {object}   domain.User
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) HandleMe(ctx *gin.Context) {
	if user, ok := middleware.CurrentUser(ctx); ok {
		ctx.JSON(http.StatusOK, user)
		return
	}

	userID, _ := middleware.UserID(ctx)
	user, err := h.users.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}
		err = fmt.Errorf("v1.HandleMe -> h.users.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}
