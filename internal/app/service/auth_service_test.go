package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibecommerce/vibecommerce-backend/config"
	"github.com/vibecommerce/vibecommerce-backend/internal/app/repository"
	"github.com/vibecommerce/vibecommerce-backend/internal/db"
	"gorm.io/gorm"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
	}
}

func setupAuthServiceTest(t *testing.T, verifier CredentialVerifier) (AuthService, *gorm.DB) {
	t.Helper()

	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(database) })

	userRepo := repository.NewUserRepository(database)
	return NewAuthService(userRepo, verifier, testJWTConfig()), database
}

func TestRegisterCreatesUser(t *testing.T) {
	svc, _ := setupAuthServiceTest(t, PlaintextVerifier{})

	result, err := svc.Register("Alice Johnson", "alice@example.com", "password123")
	require.NoError(t, err)

	assert.NotZero(t, result.User.ID)
	assert.Equal(t, "Alice Johnson", result.User.Name)
	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.Contains(t, result.User.Avatar, "ui-avatars.com")
	assert.Empty(t, result.User.Wishlist)
	assert.NotNil(t, result.User.Wishlist, "wishlist serializes as [] not null")

	require.NotNil(t, result.Tokens)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _ := setupAuthServiceTest(t, PlaintextVerifier{})

	_, err := svc.Register("Alice", "A@x.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register("Other Alice", "a@x.com", "password456")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _ := setupAuthServiceTest(t, PlaintextVerifier{})

	_, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	result, err := svc.Login("alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.NotEmpty(t, result.Tokens.AccessToken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := setupAuthServiceTest(t, PlaintextVerifier{})

	_, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Login("alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// An unknown account reports the same error as a wrong password.
	_, err = svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestBcryptVerifierRoundTrip(t *testing.T) {
	svc, database := setupAuthServiceTest(t, BcryptVerifier{})

	_, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	var stored string
	require.NoError(t, database.Table("users").
		Where("email = ?", "alice@example.com").
		Select("password").Scan(&stored).Error)
	assert.NotEqual(t, "password123", stored, "bcrypt mode must not store plaintext")

	_, err = svc.Login("alice@example.com", "password123")
	assert.NoError(t, err)

	_, err = svc.Login("alice@example.com", "password124")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUserByID(t *testing.T) {
	svc, _ := setupAuthServiceTest(t, PlaintextVerifier{})

	result, err := svc.Register("Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	user, err := svc.GetUserByID(result.User.ID)
	require.NoError(t, err)
	assert.Equal(t, result.User.Email, user.Email)

	_, err = svc.GetUserByID(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestNewCredentialVerifierModes(t *testing.T) {
	assert.IsType(t, PlaintextVerifier{}, NewCredentialVerifier("plaintext"))
	assert.IsType(t, PlaintextVerifier{}, NewCredentialVerifier(""))
	assert.IsType(t, BcryptVerifier{}, NewCredentialVerifier("bcrypt"))
	assert.IsType(t, PlaintextVerifier{}, NewCredentialVerifier("argon2"))
}
