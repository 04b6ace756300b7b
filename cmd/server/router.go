package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/questboard/questboard-api/internal/api"
	apimiddleware "github.com/questboard/questboard-api/internal/api/middleware"
)

// newRouter configures the application router with all routes and
// middleware.
func newRouter(
	questService api.QuestService,
	userService api.UserService,
	log *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)

	questHandler := api.NewQuestHandler(questService, log)
	userHandler := api.NewUserHandler(userService, log)

	r.Route("/quests", func(r chi.Router) {
		r.Get("/", questHandler.List)
		r.Post("/", questHandler.Create)
		r.Get("/category/{categoryId}", questHandler.SearchByCategory)
		r.Get("/{id}", questHandler.Get)
		r.Put("/{id}", questHandler.Update)
		r.Delete("/{id}", questHandler.Delete)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.List)
		r.Post("/", userHandler.Create)
		r.Get("/{id}", userHandler.Get)
		r.Put("/{id}", userHandler.Update)
		r.Delete("/{id}", userHandler.Delete)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error("failed to write health check response", slog.String("error", err.Error()))
		}
	})

	return r
}
