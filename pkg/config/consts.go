package config

// EnvPrefix namespaces every variable consumed by envconfig.
const EnvPrefix = "OPSBOARD"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv     = "OPSBOARD_APP_ENV"
	EnvPort       = "OPSBOARD_APP_PORT"
	EnvDBDSN      = "OPSBOARD_DB_DSN"
	EnvDBHost     = "OPSBOARD_DB_HOST"
	EnvDBUser     = "OPSBOARD_DB_USER"
	EnvDBName     = "OPSBOARD_DB_NAME"
	EnvRedisURL   = "OPSBOARD_REDIS_URL"
	EnvJWTSecret  = "OPSBOARD_JWT_SECRET"
	EnvJWTIssuer  = "OPSBOARD_JWT_ISSUER"
	EnvJWTExpMin  = "OPSBOARD_JWT_EXPIRATION_MINUTES"
	EnvAPIBaseURL = "OPSBOARD_API_BASE_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
