package main

import (
	"errors"
	"net/http"

	"cinescope/proj/internal/lib/validator"
	"cinescope/proj/internal/services/auth"
)

type registerRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	Country   string `json:"country" validate:"required,max=100"`
}

func (app *Application) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := app.readJSON(w, r, &req); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, req); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	user, err := app.services.Auth.Register(r.Context(), req.FirstName, req.LastName, req.Email, req.Password, req.Country)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			app.Http.Conflict(w, r, auth.ErrEmailTaken.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Created(w, r, envelop{"userId": user.ID}, "Registration successful. Please login.")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := app.readJSON(w, r, &req); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, req); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	user, token, err := app.services.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			app.Http.Unauthorized(w, r, auth.ErrInvalidCredentials.Error())
			return
		}
		app.Http.ServerError(w, r, err, "")
		return
	}
	app.Http.Ok(w, r, envelop{"user": user.Public(), "token": token}, "")
}
