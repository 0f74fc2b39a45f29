package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/restodesk/backoffice/internal/api/handler/v1/response"
	"github.com/restodesk/backoffice/internal/pkg/jwthelper"
)

const (
	ContextKeyUserID  = "userID"
	ContextKeyTokenID = "tokenID"
	ContextKeyClaims  = "claims"
)

var errMissingToken = errors.New("missing bearer token")

type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Authenticator struct {
	signingKey []byte
	revoked    RevocationChecker
}

func NewAuthenticator(signingKey string, revoked RevocationChecker) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
		revoked:    revoked,
	}
}

// VerifyJWT accepts the token from the Authorization header or, for browser
// sessions, from the auth cookie.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		if a.revoked != nil {
			revoked, err := a.revoked.IsRevoked(ctx.Request.Context(), claims.ID)
			if err != nil {
				err = fmt.Errorf("middleware.VerifyJWT -> a.revoked.IsRevoked -> %w", err)
				response.RenderErr(ctx, response.ErrInternalServerError(err))
				return
			}
			if revoked {
				response.RenderErr(ctx, response.ErrUnauthorized(jwthelper.ErrInvalidToken))
				return
			}
		}

		ctx.Set(ContextKeyUserID, userID)
		ctx.Set(ContextKeyTokenID, claims.ID)
		ctx.Set(ContextKeyClaims, claims)
		ctx.Next()
	}
}

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	if cookie, err := ctx.Cookie(response.AuthCookie); err == nil {
		return cookie
	}
	// Browsers cannot set headers on a websocket handshake.
	if ctx.IsWebsocket() {
		return ctx.Query("token")
	}

	return ""
}

func UserID(ctx *gin.Context) (uint, bool) {
	id, ok := ctx.Get(ContextKeyUserID)
	if !ok {
		return 0, false
	}
	uid, ok := id.(uint)

	return uid, ok
}

func Claims(ctx *gin.Context) (*jwthelper.Claims, bool) {
	c, ok := ctx.Get(ContextKeyClaims)
	if !ok {
		return nil, false
	}
	claims, ok := c.(*jwthelper.Claims)

	return claims, ok
}
