package router

import (
	"log"
	"net/http"

	"github.com/cyclebees/estimates-api/internal/config"
	"github.com/cyclebees/estimates-api/internal/database"
	"github.com/cyclebees/estimates-api/internal/handler"
	mw "github.com/cyclebees/estimates-api/internal/middleware"
	"github.com/cyclebees/estimates-api/internal/notify"
	"github.com/cyclebees/estimates-api/internal/service"
	"github.com/cyclebees/estimates-api/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// New creates a Chi router with all application routes wired up.
// Customer routes are public; staff routes require a bearer token.
func New(cfg *config.Config, queries *database.Queries, pool *pgxpool.Pool, hub *ws.Hub, poller *notify.Poller) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	newRequestStore := func(db database.DBTX) service.RequestStore {
		return database.New(db)
	}
	requestService := service.NewRequestService(pool, newRequestStore)
	lacarteCache := service.NewLaCarteCache(queries, cfg.LaCarteCacheTTL)

	requestHandler := handler.NewRequestHandler(requestService, queries, cfg.PublicBaseURL)
	itemHandler := handler.NewItemHandler(requestService, queries)
	noteHandler := handler.NewNoteHandler(queries)
	billHandler := handler.NewBillHandler(queries)
	addonHandler := handler.NewAddonHandler(queries)
	bundleHandler := handler.NewBundleHandler(queries)
	lacarteHandler := handler.NewLaCarteHandler(lacarteCache, queries)
	publicHandler := handler.NewPublicHandler(queries, requestService, lacarteCache)

	// Public routes
	handler.NewAuthHandler(queries, cfg.JWTSecret).RegisterRoutes(r)
	publicHandler.RegisterRoutes(r)
	billHandler.RegisterPublicRoutes(r)
	addonHandler.RegisterPublicRoutes(r)
	bundleHandler.RegisterPublicRoutes(r)
	lacarteHandler.RegisterPublicRoutes(r)

	// Dashboards authenticate on the handshake itself.
	r.Method(http.MethodGet, "/ws/dashboard", ws.NewDashboardServer(hub, cfg.JWTSecret, cfg.AllowedOrigins))

	// Staff routes
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))

		r.Route("/requests", func(r chi.Router) {
			requestHandler.RegisterRoutes(r)
			billHandler.RegisterRoutes(r)
			r.Route("/{id}/items", itemHandler.RegisterRoutes)
			r.Route("/{id}/notes", noteHandler.RegisterRoutes)
		})

		r.Route("/admin/addons", addonHandler.RegisterRoutes)
		r.Route("/admin/bundles", bundleHandler.RegisterRoutes)
		r.Route("/admin/lacarte", lacarteHandler.RegisterRoutes)

		if poller != nil {
			r.Route("/notifications", handler.NewNotificationHandler(poller).RegisterRoutes)
		}
	})

	log.Println("Router initialized with all handlers")
	return r
}
