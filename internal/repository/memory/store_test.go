package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/session"
)

func TestListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewStore())

	codes := []string{"EMP003", "EMP001", "EMP002"}
	for _, code := range codes {
		_, err := repo.Create(ctx, employee.Employee{
			ID:           uuid.NewString(),
			EmployeeCode: code,
			Name:         "Employee " + code,
			Email:        code + "@example.com",
		})
		require.NoError(t, err)
	}

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for i, code := range codes {
		assert.Equal(t, code, listed[i].EmployeeCode)
	}
}

func TestGetByEmployeeCode(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewStore())

	created, err := repo.Create(ctx, employee.Employee{
		ID:           uuid.NewString(),
		EmployeeCode: "EMP001",
		Name:         "Ari",
		Email:        "ari@example.com",
	})
	require.NoError(t, err)

	found, err := repo.GetByEmployeeCode(ctx, "EMP001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.GetByEmployeeCode(ctx, "EMP999")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteExpiredSessions(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(NewStore())
	now := time.Now()

	live, err := repo.Create(ctx, session.Session{
		ID:        uuid.NewString(),
		UserID:    uuid.NewString(),
		ExpiresAt: now.Add(time.Hour),
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := repo.Create(ctx, session.Session{
			ID:        uuid.NewString(),
			UserID:    uuid.NewString(),
			ExpiresAt: now.Add(-time.Hour),
		})
		require.NoError(t, err)
	}

	deleted, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	_, err = repo.GetByID(ctx, live.ID)
	assert.NoError(t, err)
}

func TestFaceImagesAreCopied(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewStore())

	images := []string{"face-1.jpg"}
	created, err := repo.Create(ctx, employee.Employee{
		ID:           uuid.NewString(),
		EmployeeCode: "EMP001",
		Name:         "Ari",
		Email:        "ari@example.com",
		FaceImages:   images,
	})
	require.NoError(t, err)

	// Mutating the caller's slice must not leak into the store.
	images[0] = "mutated.jpg"

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"face-1.jpg"}, stored.FaceImages)
}
