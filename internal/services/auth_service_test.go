package services

import (
	"context"
	"testing"

	"projectmart_backend/internal/models"
	"projectmart_backend/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*models.User, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, db *gorm.DB, user *models.User) error {
	if f.users == nil {
		f.users = make(map[string]*models.User)
	}
	f.users[user.Username] = user
	return nil
}

func newAuthFixture(t *testing.T, username, password string) (AuthService, *fakeUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*models.User{
		username: {ID: 1, Username: username, PasswordHash: string(hash)},
	}}
	return NewAuthService(repo, "test-secret", 60), repo
}

func TestVerifyCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t, "admin", "hunter2")
	ctx := context.Background()

	ok, err := svc.VerifyCredentials(ctx, nil, "admin", "hunter2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.VerifyCredentials(ctx, nil, "admin", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.VerifyCredentials(ctx, nil, "nobody", "hunter2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, _ := newAuthFixture(t, "admin", "hunter2")

	signed, err := svc.Login(context.Background(), nil, "admin", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["sub"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t, "admin", "hunter2")

	_, err := svc.Login(context.Background(), nil, "admin", "wrong")

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
}

func TestSeedFirstUser(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{}}

	require.NoError(t, SeedFirstUser(nil, repo, "admin", "hunter2"))
	require.Contains(t, repo.users, "admin")

	seeded := repo.users["admin"]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(seeded.PasswordHash), []byte("hunter2")))

	// Idempotent: a second boot must not replace the account.
	require.NoError(t, SeedFirstUser(nil, repo, "admin", "other"))
	assert.Equal(t, seeded, repo.users["admin"])
}

func TestSeedFirstUserSkipsWhenUnconfigured(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{}}

	require.NoError(t, SeedFirstUser(nil, repo, "", ""))
	assert.Empty(t, repo.users)
}
