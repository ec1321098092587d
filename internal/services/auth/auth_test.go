package auth

import (
	"context"
	"testing"
	"time"

	"cinescope/proj/internal/domain/models"
	"cinescope/proj/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUsersStorage struct {
	byEmail map[string]*models.User
}

func newFakeUsersStorage() *fakeUsersStorage {
	return &fakeUsersStorage{byEmail: make(map[string]*models.User)}
}

func (f *fakeUsersStorage) Insert(_ context.Context, user *models.User) (*models.User, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return nil, storage.ErrConflict
	}
	stored := *user
	stored.CreatedAt = time.Now()
	f.byEmail[user.Email] = &stored
	return &stored, nil
}

func (f *fakeUsersStorage) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return user, nil
}

func newTestService(store *fakeUsersStorage) *AuthService {
	return New(discardLogger(), store, NewTokenIssuer("test-secret", time.Hour))
}

func TestRegisterHashesPassword(t *testing.T) {
	store := newFakeUsersStorage()
	svc := newTestService(store)
	user, err := svc.Register(context.Background(), "alice", "smith", "a@x.com", "pw12345678", "India")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, []byte("pw12345678"), user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(user.PasswordHash, []byte("pw12345678")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUsersStorage()
	svc := newTestService(store)
	first, err := svc.Register(context.Background(), "alice", "smith", "a@x.com", "pw12345678", "India")
	require.NoError(t, err)
	originalHash := store.byEmail["a@x.com"].PasswordHash

	_, err = svc.Register(context.Background(), "mallory", "smith", "a@x.com", "different-pw", "India")
	assert.ErrorIs(t, err, ErrEmailTaken)
	// the original record is untouched
	assert.Equal(t, originalHash, store.byEmail["a@x.com"].PasswordHash)
	assert.Equal(t, first.ID, store.byEmail["a@x.com"].ID)
}

func TestLoginDoesNotDistinguishFailures(t *testing.T) {
	store := newFakeUsersStorage()
	svc := newTestService(store)
	_, err := svc.Register(context.Background(), "alice", "smith", "a@x.com", "pw12345678", "India")
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(context.Background(), "a@x.com", "not-the-password")
	_, _, unknownEmail := svc.Login(context.Background(), "nobody@x.com", "pw12345678")
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	store := newFakeUsersStorage()
	svc := newTestService(store)
	registered, err := svc.Register(context.Background(), "alice", "smith", "a@x.com", "pw12345678", "India")
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "a@x.com", "pw12345678")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}
