package controllers

import (
	"net/http"

	"github.com/opsboardhq/opsboard-backend/api/responses"
)

// PublicPing handles GET /api/public/ping, an unauthenticated liveness probe
// for clients.
func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, "pong", map[string]string{"service": "opsboard"})
	}
}
