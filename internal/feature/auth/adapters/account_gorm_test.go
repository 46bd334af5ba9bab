package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mood_backend/internal/feature/auth/domain/entity"
	"mood_backend/internal/feature/auth/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	// Create accounts table
	err = db.AutoMigrate(&entity.Account{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestNewAccountRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewAccountRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestAccountGorm_Create(t *testing.T) {
	t.Run("successful account creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAccountRepository(db)

		account := &entity.Account{
			Email:    "test@example.com",
			Password: "hashed_password",
		}

		err := repo.Create(context.Background(), account)

		assert.NoError(t, err, "failed to create account")
		assert.NotZero(t, account.ID, "ID is not set")
		assert.False(t, account.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, account.UpdatedAt.IsZero(), "UpdatedAt is not set")
	})

	t.Run("duplicate email returns ErrEmailAlreadyExists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAccountRepository(db)

		first := &entity.Account{
			Email:    "duplicate@example.com",
			Password: "password1",
		}
		err := repo.Create(context.Background(), first)
		require.NoError(t, err, "failed to create first account")

		// Create second account with the same email; the storage unique
		// index rejects it regardless of which caller gets there first
		second := &entity.Account{
			Email:    "duplicate@example.com",
			Password: "password2",
		}
		err = repo.Create(context.Background(), second)

		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists, "should map unique violation")

		// Exactly one account persisted
		var count int64
		require.NoError(t, db.Model(&entity.Account{}).Count(&count).Error)
		assert.Equal(t, int64(1), count, "only one account should survive")
	})
}

func TestAccountGorm_FindByEmail(t *testing.T) {
	t.Run("find account by email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAccountRepository(db)

		expected := &entity.Account{
			Email:    "find@example.com",
			Password: "hashed_password",
		}
		err := repo.Create(context.Background(), expected)
		require.NoError(t, err, "failed to create test data")

		found, err := repo.FindByEmail(context.Background(), "find@example.com")

		assert.NoError(t, err, "failed to find account")
		assert.NotNil(t, found, "account is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
		assert.Equal(t, expected.Password, found.Password, "password does not match")
	})

	t.Run("email not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAccountRepository(db)

		found, err := repo.FindByEmail(context.Background(), "notfound@example.com")

		assert.Nil(t, found, "account should be nil")
		assert.ErrorIs(t, err, usecase.ErrAccountNotFound, "should return ErrAccountNotFound")
	})

	t.Run("find correct account when multiple accounts exist", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAccountRepository(db)

		accounts := []*entity.Account{
			{Email: "one@example.com", Password: "pass1"},
			{Email: "two@example.com", Password: "pass2"},
			{Email: "three@example.com", Password: "pass3"},
		}
		for _, a := range accounts {
			err := repo.Create(context.Background(), a)
			require.NoError(t, err, "failed to create test data")
		}

		found, err := repo.FindByEmail(context.Background(), "two@example.com")

		assert.NoError(t, err, "failed to find account")
		assert.Equal(t, accounts[1].ID, found.ID, "ID does not match")
		assert.Equal(t, "two@example.com", found.Email, "email does not match")
	})
}

func TestAccountGorm_FindByID(t *testing.T) {
	t.Run("find account by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAccountRepository(db)

		expected := &entity.Account{
			Email:    "findbyid@example.com",
			Password: "hashed_password",
		}
		err := repo.Create(context.Background(), expected)
		require.NoError(t, err, "failed to create test data")

		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err, "failed to find account")
		assert.NotNil(t, found, "account is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
	})

	t.Run("ID not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewAccountRepository(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Nil(t, found, "account should be nil")
		assert.ErrorIs(t, err, usecase.ErrAccountNotFound, "should return ErrAccountNotFound")
	})
}
