package postgresql_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetrack/attendance-backend-go/internal/domain/user"
	"github.com/facetrack/attendance-backend-go/internal/repository/postgresql"
)

func TestUserRepository_CreateAndGetByUsername(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(db)

	created, err := userRepo.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Username:     "admin",
		PasswordHash: "not-a-real-hash",
		FullName:     "Administrator",
		Role:         user.RoleAdmin,
		IsActive:     true,
	})
	require.NoError(t, err)

	stored, err := userRepo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, created.ID, stored.ID)
	assert.Equal(t, "Administrator", stored.FullName)
	assert.Nil(t, stored.LastLogin)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(db)

	_, err := userRepo.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Username:     "admin",
		PasswordHash: "not-a-real-hash",
		FullName:     "Administrator",
		Role:         user.RoleAdmin,
		IsActive:     true,
	})
	require.NoError(t, err)

	_, err = userRepo.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Username:     "admin",
		PasswordHash: "not-a-real-hash",
		FullName:     "Second Administrator",
		Role:         user.RoleAdmin,
		IsActive:     true,
	})
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestUserRepository_GetByUsernameNotFound(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := postgresql.NewUserRepository(db).GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
