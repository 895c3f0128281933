package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/opsboardhq/opsboard-backend/api/middleware"
	"github.com/opsboardhq/opsboard-backend/api/responses"
	"github.com/opsboardhq/opsboard-backend/internal/users"
	"github.com/opsboardhq/opsboard-backend/pkg/db/models"
	pkgerrors "github.com/opsboardhq/opsboard-backend/pkg/errors"
	"github.com/opsboardhq/opsboard-backend/pkg/logger"
	"gorm.io/gorm"
)

type userFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// AuthMe handles GET /api/auth/me. Requires the Auth middleware upstream.
func AuthMe(repo userFinder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required"))
			return
		}

		user, err := repo.FindByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "user not found"))
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user"))
			return
		}

		responses.WriteSuccess(w, "", users.FromModel(user))
	}
}
