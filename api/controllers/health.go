package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/opsboardhq/opsboard-backend/api/responses"
	pkgerrors "github.com/opsboardhq/opsboard-backend/pkg/errors"
	"github.com/opsboardhq/opsboard-backend/pkg/logger"
	"go.uber.org/multierr"
)

// Pinger is the health-check surface shared by the db and redis clients.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthLive handles GET /health/live.
func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, "alive", nil)
	}
}

// HealthReady handles GET /health/ready. All dependencies must answer a ping;
// failures are aggregated so one check does not mask another.
func HealthReady(dependencies map[string]Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var combined error
		for name, dep := range dependencies {
			if dep == nil {
				continue
			}
			if err := dep.Ping(r.Context()); err != nil {
				combined = multierr.Append(combined, fmt.Errorf("%s: %w", name, err))
			}
		}

		if combined != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "readiness check failed"))
			return
		}

		responses.WriteSuccess(w, "ready", nil)
	}
}
