package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/storefront-gate/api/controllers"
	cartcontrollers "github.com/angelmondragon/storefront-gate/api/controllers/cart"
	navigationcontrollers "github.com/angelmondragon/storefront-gate/api/controllers/navigation"
	themecontrollers "github.com/angelmondragon/storefront-gate/api/controllers/theme"
	"github.com/angelmondragon/storefront-gate/api/middleware"
	"github.com/angelmondragon/storefront-gate/pkg/config"
	"github.com/angelmondragon/storefront-gate/pkg/db"
	"github.com/angelmondragon/storefront-gate/pkg/logger"
	"github.com/angelmondragon/storefront-gate/pkg/metrics"
	"github.com/angelmondragon/storefront-gate/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	navigationService navigationcontrollers.Service,
	readinessProbe navigationcontrollers.ReadinessProbe,
	cartService cartcontrollers.Service,
	themeService themecontrollers.Service,
	navigationMetrics *metrics.NavigationMetrics,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/navigation/check", navigationcontrollers.Check(navigationService, readinessProbe, navigationMetrics, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.Fetch(cartService, logg))
			r.Delete("/", cartcontrollers.ClearCart(cartService, logg))
			r.Post("/items", cartcontrollers.AddItem(cartService, logg))
			r.Patch("/items/{index}", cartcontrollers.UpdateQuantity(cartService, logg))
			r.Delete("/items/{index}", cartcontrollers.RemoveItem(cartService, logg))
		})

		r.Route("/theme", func(r chi.Router) {
			r.Get("/", themecontrollers.Fetch(themeService, logg))
			r.Put("/", themecontrollers.Update(themeService, logg))
			r.Post("/toggle", themecontrollers.Toggle(themeService, logg))
		})
	})

	return r
}
