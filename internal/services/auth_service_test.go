package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"registro/internal/models"
	"registro/internal/repository"
)

func setupAuthTest(t *testing.T) *AuthService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewAuthService(repository.NewUserRepository(db))
}

func TestAuthService_Register(t *testing.T) {
	svc := setupAuthTest(t)

	user, err := svc.Register(RegisterInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "supersecret", user.PasswordHash)

	t.Run("rejects a taken username", func(t *testing.T) {
		_, err := svc.Register(RegisterInput{Username: "alice", Password: "other"})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("requires username and password", func(t *testing.T) {
		_, err := svc.Register(RegisterInput{Password: "x"})
		assert.ErrorIs(t, err, ErrUsernameRequired)

		_, err = svc.Register(RegisterInput{Username: "bob"})
		assert.ErrorIs(t, err, ErrPasswordRequired)
	})
}

func TestAuthService_Login(t *testing.T) {
	svc := setupAuthTest(t)

	_, err := svc.Register(RegisterInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	t.Run("succeeds with correct credentials", func(t *testing.T) {
		user, err := svc.Login(LoginInput{Username: "alice", Password: "supersecret"})
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("wrong password and unknown user fail identically", func(t *testing.T) {
		_, wrongPassword := svc.Login(LoginInput{Username: "alice", Password: "nope"})
		_, unknownUser := svc.Login(LoginInput{Username: "ghost", Password: "supersecret"})

		assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
		assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	})
}

func TestAuthService_GetUserByUsername(t *testing.T) {
	svc := setupAuthTest(t)

	_, err := svc.Register(RegisterInput{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	user, err := svc.GetUserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.GetUserByUsername("ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
