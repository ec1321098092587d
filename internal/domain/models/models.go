package models

import (
	"time"
)

// WatchList names one of the per-user movie reference sets.
type WatchList string

const (
	ListFavorites         WatchList = "favorites"
	ListCurrentlyWatching WatchList = "currently_watching"
	ListRecentlyWatched   WatchList = "recently_watched"
)

type User struct {
	ID           string    `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	PasswordHash []byte    `db:"password_hash"`
	Country      string    `db:"country"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// PublicUser is the wire projection of a User. The password hash never
// crosses the HTTP boundary through this type.
type PublicUser struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Country:   u.Country,
		CreatedAt: u.CreatedAt,
	}
}

// Movie is a local mirror of one external-catalog title, created the first
// time any user references it and never refreshed afterwards. The JSON names
// match the contract the browser client already consumes.
type Movie struct {
	ID           int64     `json:"id" db:"id"`
	TMDBID       int64     `json:"tmdbId" db:"tmdb_id"`
	Title        string    `json:"title" db:"title"`
	Overview     string    `json:"overview" db:"overview"`
	PosterPath   string    `json:"poster_path" db:"poster_path"`
	BackdropPath string    `json:"backdrop_path" db:"backdrop_path"`
	ReleaseDate  string    `json:"releaseDate" db:"release_date"`
	VoteAverage  float64   `json:"vote_average" db:"vote_average"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
}
