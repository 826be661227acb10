package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"todo_backend/internal/feature/auth/domain/entity"
	"todo_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	// Create User table
	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func createTestUser(t *testing.T, repo *userMySQL, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:        email,
		PasswordHash: "hashed_password",
		Role:         entity.RoleUser,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUserMySQL_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := &entity.User{
			Email:        "test@example.com",
			PasswordHash: "hashed_password",
			Name:         "Test User",
			Role:         entity.RoleUser,
		}

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.Nil(t, user.ResetToken, "new user must not have a reset token")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		createTestUser(t, repo, "duplicate@example.com")

		// Create second user with the same email
		user2 := &entity.User{
			Email:        "duplicate@example.com",
			PasswordHash: "password2",
		}
		err := repo.Create(context.Background(), user2)

		assert.Error(t, err, "should return duplicate error")
	})

	t.Run("first account is unaffected by the duplicate attempt", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		first := createTestUser(t, repo, "duplicate@example.com")
		_ = repo.Create(context.Background(), &entity.User{
			Email:        "duplicate@example.com",
			PasswordHash: "other_hash",
		})

		got, err := repo.FindByEmail(context.Background(), "duplicate@example.com")
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)
		assert.Equal(t, "hashed_password", got.PasswordHash, "original password hash must be unchanged")
	})
}

func TestUserMySQL_FindByEmail(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		created := createTestUser(t, repo, "test@example.com")

		got, err := repo.FindByEmail(context.Background(), "test@example.com")

		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "test@example.com", got.Email)
	})

	t.Run("unknown email returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserMySQL_FindByID(t *testing.T) {
	t.Run("existing user", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		created := createTestUser(t, repo, "test@example.com")

		got, err := repo.FindByID(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.Email, got.Email)
	})

	t.Run("unknown id returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		_, err := repo.FindByID(context.Background(), 999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserMySQL_SetResetToken(t *testing.T) {
	t.Run("stores token and expiry together", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		createTestUser(t, repo, "test@example.com")
		expiry := time.Now().Add(time.Hour)

		err := repo.SetResetToken(context.Background(), "test@example.com", "token-value", expiry)
		require.NoError(t, err)

		got, err := repo.FindByEmail(context.Background(), "test@example.com")
		require.NoError(t, err)
		require.NotNil(t, got.ResetToken)
		require.NotNil(t, got.ResetTokenExpiry)
		assert.Equal(t, "token-value", *got.ResetToken)
		assert.WithinDuration(t, expiry, *got.ResetTokenExpiry, time.Second)
	})

	t.Run("overwrites a previous token", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		createTestUser(t, repo, "test@example.com")
		require.NoError(t, repo.SetResetToken(context.Background(), "test@example.com", "first", time.Now().Add(time.Hour)))
		require.NoError(t, repo.SetResetToken(context.Background(), "test@example.com", "second", time.Now().Add(time.Hour)))

		got, err := repo.FindByEmail(context.Background(), "test@example.com")
		require.NoError(t, err)
		assert.Equal(t, "second", *got.ResetToken)
	})

	t.Run("unknown email returns ErrUserNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		err := repo.SetResetToken(context.Background(), "nobody@example.com", "token", time.Now().Add(time.Hour))

		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserMySQL_ConsumeResetToken(t *testing.T) {
	t.Run("replaces the hash and clears the token", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		createTestUser(t, repo, "test@example.com")
		require.NoError(t, repo.SetResetToken(context.Background(), "test@example.com", "token-value", time.Now().Add(time.Hour)))

		err := repo.ConsumeResetToken(context.Background(), "test@example.com", "token-value", "new_hash")
		require.NoError(t, err)

		got, err := repo.FindByEmail(context.Background(), "test@example.com")
		require.NoError(t, err)
		assert.Equal(t, "new_hash", got.PasswordHash)
		assert.Nil(t, got.ResetToken, "token must be cleared after consumption")
		assert.Nil(t, got.ResetTokenExpiry, "expiry must be cleared after consumption")
	})

	t.Run("token is single use", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		createTestUser(t, repo, "test@example.com")
		require.NoError(t, repo.SetResetToken(context.Background(), "test@example.com", "token-value", time.Now().Add(time.Hour)))

		require.NoError(t, repo.ConsumeResetToken(context.Background(), "test@example.com", "token-value", "new_hash"))

		// 同じトークンの二度目の消費はcompare-and-clearに一致せず失敗する
		err := repo.ConsumeResetToken(context.Background(), "test@example.com", "token-value", "another_hash")
		assert.ErrorIs(t, err, usecase.ErrInvalidResetToken)

		got, _ := repo.FindByEmail(context.Background(), "test@example.com")
		assert.Equal(t, "new_hash", got.PasswordHash, "second consumption must not change the hash")
	})

	t.Run("mismatched token does not change anything", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		createTestUser(t, repo, "test@example.com")
		require.NoError(t, repo.SetResetToken(context.Background(), "test@example.com", "token-value", time.Now().Add(time.Hour)))

		err := repo.ConsumeResetToken(context.Background(), "test@example.com", "wrong-token", "new_hash")
		assert.ErrorIs(t, err, usecase.ErrInvalidResetToken)

		got, _ := repo.FindByEmail(context.Background(), "test@example.com")
		assert.Equal(t, "hashed_password", got.PasswordHash)
		assert.NotNil(t, got.ResetToken, "pending token must survive a mismatched attempt")
	})
}
