package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (app *Application) routes() http.Handler {
	router := chi.NewRouter()
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		app.Http.NotFound(w, r, "Page not found")
	})
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(app.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{app.cfg.CORS.AllowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	router.Use(app.RateLimiter)
	router.Route("/api", func(r chi.Router) {
		r.Get("/healthcheck", app.healthcheck)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", app.register)
			r.Post("/login", app.login)
		})
		r.Route("/movies", func(r chi.Router) {
			r.Get("/popular", app.popularMovies)
			r.Get("/search", app.searchMovies)
			r.Get("/{id}", app.movieDetails)
		})
		r.Route("/users", func(r chi.Router) {
			r.Use(app.Authenticate)
			r.Get("/profile", app.getProfile)
			r.Put("/profile", app.updateProfile)
			r.Get("/watch-history", app.getWatchHistory)
			r.Get("/favorites", app.getFavorites)
			r.Post("/favorites/{movieId}", app.addToFavorites)
			r.Delete("/favorites/{movieId}", app.removeFromFavorites)
			r.Post("/recently-watched/{movieId}", app.addToRecentlyWatched)
			r.Get("/currently-watching", app.getCurrentlyWatching)
			r.Post("/currently-watching/{movieId}", app.addToCurrentlyWatching)
		})
	})
	return router
}
