package models

import "cinescope/proj/internal/storage/postgres"

type Models struct {
	Users  *UserModel
	Movies *MovieModel
	Lists  *ListModel
}

func New(db *postgres.Storage) *Models {
	return &Models{
		Users:  &UserModel{db.Conn},
		Movies: &MovieModel{db.Conn},
		Lists:  &ListModel{db.Conn},
	}
}
