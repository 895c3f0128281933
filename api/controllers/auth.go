package controllers

import (
	"context"
	"net/http"

	"github.com/opsboardhq/opsboard-backend/api/responses"
	"github.com/opsboardhq/opsboard-backend/api/validators"
	"github.com/opsboardhq/opsboard-backend/internal/auth"
	"github.com/opsboardhq/opsboard-backend/pkg/logger"
)

type authService interface {
	Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error)
	Register(ctx context.Context, req auth.RegisterRequest) (*auth.LoginResponse, error)
}

// AuthLogin handles POST /api/auth/login.
func AuthLogin(svc authService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, "login successful", result)
	}
}

// AuthRegister handles POST /api/auth/register.
func AuthRegister(svc authService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.RegisterRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Register(r.Context(), req)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, "registration successful", result)
	}
}
