package auth

import (
	"context"
	"errors"
	"log/slog"

	"cinescope/proj/internal/domain/models"
	"cinescope/proj/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// hashCost matches the deliberately expensive work factor the original
// deployment used for its password hashes.
const hashCost = 12

type UsersStorage interface {
	Insert(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthService struct {
	log     *slog.Logger
	storage UsersStorage
	tokens  *TokenIssuer
}

func New(log *slog.Logger, storage UsersStorage, tokens *TokenIssuer) *AuthService {
	return &AuthService{
		log:     log,
		storage: storage,
		tokens:  tokens,
	}
}

// Register creates the user and returns it. It does not issue a session
// token: registration and login are decoupled, the caller must log in
// separately.
func (s *AuthService) Register(ctx context.Context, firstName, lastName, email, password, country string) (*models.User, error) {
	const op = "auth.AuthService.Register"
	log := s.log.With("op", op, "email", email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		log.Error("hashing password: " + err.Error())
		return nil, err
	}
	user := &models.User{
		ID:           uuid.New().String(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
		Country:      country,
	}
	created, err := s.storage.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("email already registered")
			return nil, ErrEmailTaken
		}
		log.Error(err.Error())
		return nil, err
	}
	return created, nil
}

// Login verifies the credentials and mints a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	const op = "auth.AuthService.Login"
	log := s.log.With("op", op, "email", email)
	user, err := s.storage.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("login attempt for unknown email")
			return nil, "", ErrInvalidCredentials
		}
		log.Error(err.Error())
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		log.Info("password verification failed")
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		log.Error("issuing token: " + err.Error())
		return nil, "", err
	}
	return user, token, nil
}

// VerifyToken is pure verification against the signing secret; it performs no
// database lookup.
func (s *AuthService) VerifyToken(token string) (*Claims, error) {
	return s.tokens.Verify(token)
}
