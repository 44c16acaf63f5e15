package config

const EnvPrefix = "STORAGEFRONT"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Env var names referenced outside the struct tags (tests, error messages).
const (
	EnvAppEnv         = "STORAGEFRONT_APP_ENV"
	EnvPort           = "STORAGEFRONT_APP_PORT"
	EnvWSSBaseURL     = "STORAGEFRONT_WSS_BASE_URL"
	EnvWSSAPIKey      = "STORAGEFRONT_WSS_API_KEY"
	EnvWSSLocationID  = "STORAGEFRONT_WSS_LOCATION_ID"
	EnvRedisURL       = "STORAGEFRONT_REDIS_URL"
)
