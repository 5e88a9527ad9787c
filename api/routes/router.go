package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rahuljain-dev/sareecenter-backend/api/controllers"
	"github.com/rahuljain-dev/sareecenter-backend/api/middleware"
	checkoutsvc "github.com/rahuljain-dev/sareecenter-backend/internal/checkout"
	ordersvc "github.com/rahuljain-dev/sareecenter-backend/internal/orders"
	productsvc "github.com/rahuljain-dev/sareecenter-backend/internal/products"
	settingsvc "github.com/rahuljain-dev/sareecenter-backend/internal/settings"
	"github.com/rahuljain-dev/sareecenter-backend/internal/storage"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/config"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/logger"
	"github.com/rahuljain-dev/sareecenter-backend/pkg/metrics"
)

// Services bundles everything the router wires into handlers.
type Services struct {
	Store    storage.Store
	Products productsvc.Service
	Orders   ordersvc.Service
	Settings settingsvc.Service
	Checkout *checkoutsvc.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	svcs Services,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(svcs.Store, logg))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", controllers.ListProducts(svcs.Products, logg))
		r.Get("/products/{id}", controllers.GetProduct(svcs.Products, logg))

		r.Get("/settings", controllers.ListSettings(svcs.Settings, logg))

		r.Post("/orders", controllers.CreateOrder(svcs.Checkout, svcs.Products, logg))
		r.Get("/orders/{id}", controllers.GetOrder(svcs.Orders, logg))

		r.Route("/admin", func(r chi.Router) {
			r.Post("/auth/login", controllers.AdminLogin(cfg.Admin, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminAuth(cfg.Admin, logg))

				r.Post("/products", controllers.AdminCreateProduct(svcs.Products, logg))
				r.Put("/products/{id}", controllers.AdminUpdateProduct(svcs.Products, logg))
				r.Delete("/products/{id}", controllers.AdminDeleteProduct(svcs.Products, logg))

				r.Get("/orders", controllers.AdminListOrders(svcs.Orders, logg))
				r.Get("/orders/{id}", controllers.GetOrder(svcs.Orders, logg))
				r.Put("/orders/{id}/status", controllers.AdminUpdateOrderStatus(svcs.Orders, logg))

				r.Get("/stats", controllers.AdminStats(svcs.Orders, logg))
				r.Get("/recent-orders", controllers.AdminRecentOrders(svcs.Orders, logg))

				r.Get("/settings", controllers.AdminSettings(svcs.Settings, logg))
				r.Put("/settings/business", controllers.AdminUpdateBusinessSettings(svcs.Settings, logg))
				r.Put("/settings/notifications", controllers.AdminUpdateNotificationSettings(svcs.Settings, logg))
				r.Put("/settings/{key}", controllers.UpdateSetting(svcs.Settings, logg))
			})
		})
	})

	return r
}
