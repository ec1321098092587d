package users

import (
	"context"
	"errors"
	"log/slog"

	"cinescope/proj/internal/domain/models"
	"cinescope/proj/internal/storage"
)

type UsersStorage interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
}

type UserService struct {
	log     *slog.Logger
	storage UsersStorage
}

func New(log *slog.Logger, storage UsersStorage) *UserService {
	return &UserService{
		log:     log,
		storage: storage,
	}
}

// ProfilePatch is a partial profile update. A nil field was omitted from the
// request; an empty string keeps the prior value too, matching the contract
// the client already depends on.
type ProfilePatch struct {
	FirstName *string
	LastName  *string
	Country   *string
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	const op = "users.UserService.Get"
	log := s.log.With("op", op, "user_id", id)
	user, err := s.storage.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user not found")
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*models.User, error) {
	const op = "users.UserService.UpdateProfile"
	log := s.log.With("op", op, "user_id", id)
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.FirstName != nil && *patch.FirstName != "" {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil && *patch.LastName != "" {
		user.LastName = *patch.LastName
	}
	if patch.Country != nil && *patch.Country != "" {
		user.Country = *patch.Country
	}
	updated, err := s.storage.Update(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user disappeared during update")
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return updated, nil
}
