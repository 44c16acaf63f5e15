package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/storagefront/wss-backend/api/controllers"
	"github.com/storagefront/wss-backend/api/middleware"
	"github.com/storagefront/wss-backend/pkg/config"
	"github.com/storagefront/wss-backend/pkg/logger"
	pkgredis "github.com/storagefront/wss-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *pkgredis.Client,
	catalogService controllers.UnitCatalog,
	bookingService controllers.BookingService,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins...),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisPinger(redisClient)))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(idempotencyStore(redisClient), logg))

		r.Get("/units", controllers.ListUnits(catalogService, logg))
		r.Post("/reservations", controllers.CreateReservation(bookingService, logg))
		r.Post("/movein/cost", controllers.MoveInCost(bookingService, logg))
		r.Post("/movein", controllers.CreateMoveIn(bookingService, logg))
	})

	return r
}

// A nil *Client must stay a nil interface, otherwise the middleware's nil
// check never fires.
func idempotencyStore(c *pkgredis.Client) pkgredis.IdempotencyStore {
	if c == nil {
		return nil
	}
	return c
}

func redisPinger(c *pkgredis.Client) pkgredis.Pinger {
	if c == nil {
		return nil
	}
	return c
}
