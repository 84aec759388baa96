package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/makerstech/storefront-backend/api/controllers"
	"github.com/makerstech/storefront-backend/api/middleware"
	cartsvc "github.com/makerstech/storefront-backend/internal/cart"
	catalogsvc "github.com/makerstech/storefront-backend/internal/catalog"
	chatsvc "github.com/makerstech/storefront-backend/internal/chat"
	contactsvc "github.com/makerstech/storefront-backend/internal/contact"
	inventorysvc "github.com/makerstech/storefront-backend/internal/inventory"
	"github.com/makerstech/storefront-backend/pkg/auth/session"
	"github.com/makerstech/storefront-backend/pkg/config"
	"github.com/makerstech/storefront-backend/pkg/logger"
	"github.com/makerstech/storefront-backend/pkg/metrics"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type sessionManager interface {
	session.Checker
	Create(ctx context.Context, subject string) (string, error)
	Revoke(ctx context.Context, sessionID string) error
}

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          pinger
	Cache       pinger
	Sessions    sessionManager
	Catalog     catalogsvc.Service
	Cart        cartsvc.Service
	Inventory   inventorysvc.Service
	Chat        chatsvc.Service
	Contact     contactsvc.Service
	HTTPMetrics *metrics.HTTPMetrics
	Registry    *prometheus.Registry
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Cache, logg))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.StorefrontSession(logg))

		r.Get("/catalog", controllers.CatalogList(deps.Catalog, logg))
		r.Get("/catalog/categories", controllers.CatalogCategories(deps.Catalog, logg))
		r.Get("/catalog/{productID}", controllers.CatalogGetProduct(deps.Catalog, logg))

		r.Post("/session", controllers.StorefrontSessionOpen(logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(deps.Cart, logg))
			r.Delete("/", controllers.CartClear(deps.Cart, logg))
			r.Post("/items", controllers.CartAddItem(deps.Cart, logg))
			r.Put("/items/{productID}", controllers.CartSetQuantity(deps.Cart, logg))
			r.Delete("/items/{productID}", controllers.CartRemoveItem(deps.Cart, logg))
		})

		r.Post("/chat", controllers.ChatRelay(deps.Chat, logg))
		r.Get("/chat/greeting", controllers.ChatGreeting(deps.Chat, logg))

		r.Post("/contact", controllers.ContactSubmit(deps.Contact, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Post("/auth/session", controllers.AdminSessionCreate(cfg.Identity, deps.Sessions, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdminSession(deps.Sessions, logg))

			r.Post("/auth/logout", controllers.AdminLogout(deps.Sessions, logg))
			r.Get("/inventory", controllers.InventoryList(deps.Inventory, logg))
			r.Get("/inventory/metrics", controllers.InventoryMetrics(deps.Inventory, logg))
		})
	})

	return r
}
