package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/opsboardhq/opsboard-backend/api/responses"
	"github.com/opsboardhq/opsboard-backend/api/validators"
	pkgAuth "github.com/opsboardhq/opsboard-backend/pkg/auth"
	"github.com/opsboardhq/opsboard-backend/pkg/auth/session"
	"github.com/opsboardhq/opsboard-backend/pkg/config"
	pkgerrors "github.com/opsboardhq/opsboard-backend/pkg/errors"
	"github.com/opsboardhq/opsboard-backend/pkg/logger"
)

type sessionRotator interface {
	Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error)
	Revoke(ctx context.Context, accessID string) error
}

// RefreshRequest carries the refresh token presented for rotation.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshResponse returns the freshly minted token pair.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthRefresh handles POST /api/auth/refresh. The access token may already be
// expired; only its signature and jti are needed to locate the session.
func AuthRefresh(cfg config.JWTConfig, sessions sessionRotator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := bearerClaimsAllowExpired(cfg, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req RefreshRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		newAccessID, newRefreshToken, err := sessions.Rotate(r.Context(), claims.ID, req.RefreshToken)
		if err != nil {
			if errors.Is(err, session.ErrInvalidRefreshToken) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid refresh token"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rotate session"))
			return
		}

		accessToken, err := pkgAuth.MintAccessToken(cfg, time.Now().UTC(), pkgAuth.AccessTokenPayload{
			UserID: claims.UserID,
			Email:  claims.Email,
			JTI:    newAccessID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt"))
			return
		}

		responses.WriteSuccess(w, "token refreshed", RefreshResponse{
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
		})
	}
}

// AuthLogout handles POST /api/auth/logout. Revoking an already-revoked
// session is treated as success so logout stays idempotent.
func AuthLogout(cfg config.JWTConfig, sessions sessionRotator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := bearerClaimsAllowExpired(cfg, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := sessions.Revoke(r.Context(), claims.ID); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "revoke session"))
			return
		}

		responses.WriteSuccess(w, "logged out", nil)
	}
}

func bearerClaimsAllowExpired(cfg config.JWTConfig, r *http.Request) (*pkgAuth.AccessTokenClaims, error) {
	token := parseBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing bearer token")
	}

	claims, err := pkgAuth.ParseAccessTokenAllowExpired(cfg, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid access token")
	}
	if strings.TrimSpace(claims.ID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "token missing session id")
	}
	return claims, nil
}

func parseBearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
