package routes

import (
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/opsboardhq/opsboard-backend/api/controllers"
	"github.com/opsboardhq/opsboard-backend/api/middleware"
	"github.com/opsboardhq/opsboard-backend/internal/auth"
	"github.com/opsboardhq/opsboard-backend/internal/users"
	"github.com/opsboardhq/opsboard-backend/pkg/auth/session"
	"github.com/opsboardhq/opsboard-backend/pkg/config"
	"github.com/opsboardhq/opsboard-backend/pkg/db"
	"github.com/opsboardhq/opsboard-backend/pkg/logger"
	redisclient "github.com/opsboardhq/opsboard-backend/pkg/redis"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterParams bundles everything the HTTP surface needs.
type RouterParams struct {
	Logger      *logger.Logger
	Config      *config.Config
	AuthService auth.Service
	Sessions    *session.Manager
	Users       *users.Repository
	DB          *db.Client
	Redis       *redisclient.Client

	// MetricsRegistry, when set, gets exposed on /metrics.
	MetricsRegistry *prometheus.Registry
}

// New assembles the chi router with middleware and all routes mounted.
func New(params RouterParams) (*chi.Mux, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if params.Config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if params.AuthService == nil {
		return nil, fmt.Errorf("auth service is required")
	}
	if params.Sessions == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	if params.Users == nil {
		return nil, fmt.Errorf("users repository is required")
	}
	if params.DB == nil {
		return nil, fmt.Errorf("db client is required")
	}
	if params.Redis == nil {
		return nil, fmt.Errorf("redis client is required")
	}

	logg := params.Logger
	cfg := params.Config

	r := chi.NewRouter()
	r.Use(middleware.Recoverer(logg))
	r.Use(middleware.RequestID(logg))
	r.Use(middleware.Logging(logg))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	r.Get("/health/live", controllers.HealthLive())
	r.Get("/health/ready", controllers.HealthReady(map[string]controllers.Pinger{
		"postgres": params.DB,
		"redis":    params.Redis,
	}, logg))

	if params.MetricsRegistry != nil {
		r.Method("GET", "/metrics", promhttp.HandlerFor(params.MetricsRegistry, promhttp.HandlerOpts{}))
	}

	r.Get("/api/public/ping", controllers.PublicPing())

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/api/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, params.Redis, logg)).
			Post("/login", controllers.AuthLogin(params.AuthService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, params.Redis, logg)).
			Post("/register", controllers.AuthRegister(params.AuthService, logg))

		r.Post("/refresh", controllers.AuthRefresh(cfg.JWT, params.Sessions, logg))
		r.Post("/logout", controllers.AuthLogout(cfg.JWT, params.Sessions, logg))

		r.With(middleware.Auth(cfg.JWT, params.Sessions, logg)).
			Get("/me", controllers.AuthMe(params.Users, logg))
	})

	return r, nil
}
