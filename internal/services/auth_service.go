package services

import (
	"context"
	"time"

	"projectmart_backend/internal/logger"
	"projectmart_backend/internal/models"
	"projectmart_backend/internal/repositories"
	"projectmart_backend/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService verifies credentials against bcrypt hashes and issues access
// tokens. Plaintext passwords are never stored or compared directly.
type AuthService interface {
	// VerifyCredentials reports whether the username/password pair is valid.
	VerifyCredentials(ctx context.Context, db *gorm.DB, username, password string) (bool, error)

	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, db *gorm.DB, username, password string) (string, error)
}

type authService struct {
	users     repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(users repositories.UserRepository, jwtSecret string, ttlMinutes int) AuthService {
	return &authService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  time.Duration(ttlMinutes) * time.Minute,
	}
}

func (s *authService) VerifyCredentials(ctx context.Context, db *gorm.DB, username, password string) (bool, error) {
	user, err := s.users.FindByUsername(ctx, db, username)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			// Burn a comparison anyway so a missing user costs the same
			// as a wrong password.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return false, nil
		}
		return false, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *authService) Login(ctx context.Context, db *gorm.DB, username, password string) (string, error) {
	ok, err := s.VerifyCredentials(ctx, db, username, password)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	if !ok {
		return "", apperrors.InvalidCredentials()
	}

	claims := jwt.MapClaims{
		"sub": username,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return signed, nil
}

// dummyHash is a bcrypt hash of an unguessable throwaway value, used to keep
// the missing-user path timing-comparable to the wrong-password path.
var dummyHash = func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("projectmart-dummy"), bcrypt.MinCost)
	return h
}()

// SeedFirstUser creates the initial login account when seed credentials are
// configured and no such user exists yet.
func SeedFirstUser(db *gorm.DB, users repositories.UserRepository, username, password string) error {
	if username == "" || password == "" {
		logger.Warn("first_user_name/first_user_password not set, skipping user seeding")
		return nil
	}

	ctx := context.Background()
	if _, err := users.FindByUsername(ctx, db, username); err == nil {
		logger.Info("seed user already exists", "username", username)
		return nil
	} else if !apperrors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := users.Create(ctx, db, &models.User{
		Username:     username,
		PasswordHash: string(hash),
	}); err != nil {
		return err
	}

	logger.Info("seeded first user", "username", username)
	return nil
}
