package main

import (
	"errors"
	"net/http"
	"strconv"

	"cinescope/proj/internal/clients/tmdb"

	"github.com/go-chi/chi/v5"
)

type catalogListParams struct {
	Query string `schema:"query"`
	Page  int    `schema:"page"`
}

// upstreamMessage pulls the catalog's own message out of an error chain, so
// proxy failures surface the upstream text rather than the generic fallback.
func upstreamMessage(err error) string {
	var apiErr *tmdb.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

func (app *Application) popularMovies(w http.ResponseWriter, r *http.Request) {
	var params catalogListParams
	if err := app.decodeQuery(r, &params); err != nil {
		app.Http.BadRequest(w, r, "invalid query parameters")
		return
	}
	movies, err := app.services.Catalog.Popular(r.Context(), params.Page)
	if err != nil {
		app.Http.ServerError(w, r, err, upstreamMessage(err))
		return
	}
	app.Http.Ok(w, r, envelop{"results": movies}, "")
}

func (app *Application) searchMovies(w http.ResponseWriter, r *http.Request) {
	var params catalogListParams
	if err := app.decodeQuery(r, &params); err != nil {
		app.Http.BadRequest(w, r, "invalid query parameters")
		return
	}
	if params.Query == "" {
		app.Http.BadRequest(w, r, "query parameter is required")
		return
	}
	movies, err := app.services.Catalog.Search(r.Context(), params.Query, params.Page)
	if err != nil {
		app.Http.ServerError(w, r, err, upstreamMessage(err))
		return
	}
	app.Http.Ok(w, r, envelop{"results": movies}, "")
}

func (app *Application) movieDetails(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		app.Http.BadRequest(w, r, "invalid movie ID")
		return
	}
	movie, err := app.services.Catalog.Details(r.Context(), id)
	if err != nil {
		app.Http.ServerError(w, r, err, upstreamMessage(err))
		return
	}
	app.Http.Ok(w, r, envelop{"movie": movie}, "")
}
