package http

import (
	"net/http"

	"github.com/MKhiriev/activity-tracker/internal/app"
	"github.com/MKhiriev/activity-tracker/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(h.cors())
	router.Use(withGZip)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	// set before any subrouter is mounted so they inherit the envelopes
	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.healthCheck)
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(h.authRateLimit())
				r.Post("/register", h.register)
				r.Post("/login", h.login)
			})
			r.Post("/logout", h.logout)
			r.With(h.auth).Get("/validate", h.validate)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/activities", func(r chi.Router) {
				r.Post("/", h.createActivity)
				r.Get("/", h.listActivities)
				r.Get("/{id}", h.getActivity)
				r.Put("/{id}", h.updateActivity)
				r.Delete("/{id}", h.deleteActivity)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", h.createCategory)
				r.Get("/", h.listCategories)
				r.Get("/{id}", h.getCategory)
				r.Put("/{id}", h.updateCategory)
				r.Delete("/{id}", h.deleteCategory)
			})

			r.Route("/tags", func(r chi.Router) {
				r.Post("/", h.createTag)
				r.Get("/", h.listTags)
				r.Get("/{id}", h.getTag)
				r.Put("/{id}", h.updateTag)
				r.Delete("/{id}", h.deleteTag)
			})

			r.Route("/stats", func(r chi.Router) {
				r.Get("/overview", h.statsOverview)
				r.Get("/by-category", h.statsByCategory)
				r.Get("/by-tag", h.statsByTag)
				r.Get("/timeline", h.statsTimeline)
			})
		})
	})

	return router
}

func (h *Handler) cors() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   h.server.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{"Authorization", traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

// authRateLimit throttles register and login per client IP.
func (h *Handler) authRateLimit() func(http.Handler) http.Handler {
	if h.server.AuthRateLimit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		h.server.AuthRateLimit,
		h.server.AuthRateWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.WriteError(w, http.StatusTooManyRequests, app.CodeRateLimited, app.MsgRateLimited, nil)
		}),
	)
}
