package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/phrazzld/boardgame-api/docs" // swagger docs
	"github.com/phrazzld/boardgame-api/internal/api"
	apiMiddleware "github.com/phrazzld/boardgame-api/internal/api/middleware"
	"github.com/phrazzld/boardgame-api/internal/api/shared"
	"github.com/phrazzld/boardgame-api/internal/domain"
	httpSwagger "github.com/swaggo/http-swagger"
)

// healthTimeout bounds the store ping behind /health.
const healthTimeout = 2 * time.Second

// setupRouter builds the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", shared.TraceIDHeader},
		ExposedHeaders: []string{shared.TraceIDHeader},
		MaxAge:         300,
	}))
	r.Use(apiMiddleware.Trace(app.logger))

	expose := app.config.Server.ExposeErrorDetail()
	gameHandler := api.NewResourceHandler[domain.Game](app.gameService, expose, app.logger)
	userHandler := api.NewResourceHandler[domain.User](app.userService, expose, app.logger)

	var protect func(http.Handler) http.Handler
	if app.jwtService != nil {
		protect = apiMiddleware.NewAuthMiddleware(app.jwtService).ProtectWrites
	}

	mount := func(routes func(chi.Router)) func(chi.Router) {
		return func(r chi.Router) {
			if protect != nil {
				r.Use(protect)
			}
			routes(r)
		}
	}
	r.Route("/games", mount(gameHandler.Routes))
	r.Route("/users", mount(userHandler.Routes))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte("Hello World")); err != nil {
			app.logger.Error("failed to write root response", "error", err)
		}
	})

	r.Get("/health", app.handleHealth)

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}

// handleHealth reports whether the document store is reachable.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := app.backend.ping(ctx); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Store unavailable", err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "OK", map[string]string{
		"backend": app.backend.name,
	})
}
