package controllers

import (
	"net/http"

	"github.com/storagefront/wss-backend/api/responses"
	"github.com/storagefront/wss-backend/pkg/config"
	pkgerrors "github.com/storagefront/wss-backend/pkg/errors"
	"github.com/storagefront/wss-backend/pkg/logger"
	pkgredis "github.com/storagefront/wss-backend/pkg/redis"
)

const envHeader = "X-Storagefront-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness of the service's dependencies. Redis is
// optional; when it is not configured the check reports it as disabled
// instead of failing.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisP pkgredis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		checks := map[string]string{"wss": "configured"}

		if redisP == nil {
			checks["redis"] = "disabled"
		} else if err := redisP.Ping(r.Context()); err != nil {
			checks["redis"] = "unreachable"
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis ping failed").WithDetails(checks))
			return
		} else {
			checks["redis"] = "ok"
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
