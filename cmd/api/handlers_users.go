package main

import (
	"errors"
	"net/http"

	"cinescope/proj/internal/domain/models"
	"cinescope/proj/internal/lib/validator"
	"cinescope/proj/internal/services/users"
)

func (app *Application) getProfile(w http.ResponseWriter, r *http.Request) {
	claims := app.authenticatedUser(r)
	user, err := app.services.Users.Get(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			app.Http.NotFound(w, r, users.ErrUserNotFound.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"user": user.Public()}, "")
}

type updateProfileRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
	Country   *string `json:"country" validate:"omitempty,max=100"`
}

func (app *Application) updateProfile(w http.ResponseWriter, r *http.Request) {
	claims := app.authenticatedUser(r)
	var req updateProfileRequest
	if err := app.readJSON(w, r, &req); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, req); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	user, err := app.services.Users.UpdateProfile(r.Context(), claims.UserID, users.ProfilePatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Country:   req.Country,
	})
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			app.Http.NotFound(w, r, users.ErrUserNotFound.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"user": user.Public()}, "")
}

// addToList is the shared handler body behind all three collection adds; only
// the target list and the response key differ per route.
func (app *Application) addToList(w http.ResponseWriter, r *http.Request, list models.WatchList, key string) {
	claims := app.authenticatedUser(r)
	id, ok := app.extractMovieIDParam(w, r)
	if !ok {
		return
	}
	movies, err := app.services.Watchlists.Add(r.Context(), claims.UserID, id, list)
	if err != nil {
		app.Http.ServerError(w, r, err, upstreamMessage(err))
		return
	}
	app.Http.Ok(w, r, envelop{key: movies}, "")
}

func (app *Application) getList(w http.ResponseWriter, r *http.Request, list models.WatchList, key string) {
	claims := app.authenticatedUser(r)
	movies, err := app.services.Watchlists.Get(r.Context(), claims.UserID, list)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{key: movies}, "")
}

func (app *Application) addToFavorites(w http.ResponseWriter, r *http.Request) {
	app.addToList(w, r, models.ListFavorites, "favorites")
}

func (app *Application) removeFromFavorites(w http.ResponseWriter, r *http.Request) {
	claims := app.authenticatedUser(r)
	id, ok := app.extractMovieIDParam(w, r)
	if !ok {
		return
	}
	movies, err := app.services.Watchlists.Remove(r.Context(), claims.UserID, id, models.ListFavorites)
	if err != nil {
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"favorites": movies}, "")
}

func (app *Application) getFavorites(w http.ResponseWriter, r *http.Request) {
	app.getList(w, r, models.ListFavorites, "favorites")
}

func (app *Application) addToRecentlyWatched(w http.ResponseWriter, r *http.Request) {
	app.addToList(w, r, models.ListRecentlyWatched, "recentlyWatched")
}

func (app *Application) getWatchHistory(w http.ResponseWriter, r *http.Request) {
	app.getList(w, r, models.ListRecentlyWatched, "recentlyWatched")
}

func (app *Application) addToCurrentlyWatching(w http.ResponseWriter, r *http.Request) {
	app.addToList(w, r, models.ListCurrentlyWatching, "currentlyWatching")
}

func (app *Application) getCurrentlyWatching(w http.ResponseWriter, r *http.Request) {
	app.getList(w, r, models.ListCurrentlyWatching, "currentlyWatching")
}
