package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facetrack/attendance-backend-go/internal/domain/settings"
	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
	"github.com/facetrack/attendance-backend-go/internal/repository/memory"
)

func newTestService() SettingsService {
	return NewSettingsService(memory.NewSettingsRepository(memory.NewStore()))
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestGetReturnsDefaults(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	current, err := service.Get(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, current.ID)
	assert.Equal(t, "08:00", current.WorkStartTime)
	assert.Equal(t, "17:00", current.WorkEndTime)
	assert.Equal(t, 5, current.GracePeriodMinutes)
	assert.Equal(t, "0.85", current.RecognitionThreshold)
	assert.True(t, current.EmailNotifications)
	assert.False(t, current.WeeklyReports)
}

func TestUpdateMergesPartialRequest(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	updated, err := service.Update(ctx, settings.UpdateSettingsRequest{
		WorkStartTime:      strPtr("09:00"),
		GracePeriodMinutes: intPtr(10),
		WeeklyReports:      boolPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "09:00", updated.WorkStartTime)
	assert.Equal(t, 10, updated.GracePeriodMinutes)
	assert.True(t, updated.WeeklyReports)
	// Untouched fields keep their previous values.
	assert.Equal(t, "17:00", updated.WorkEndTime)
	assert.Equal(t, "0.85", updated.RecognitionThreshold)

	current, err := service.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, current)
}

func TestUpdateEmptyRequestIsNoOp(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	before, err := service.Get(ctx)
	require.NoError(t, err)

	after, err := service.Update(ctx, settings.UpdateSettingsRequest{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateValidation(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	var validationErrs validator.ValidationErrors

	_, err := service.Update(ctx, settings.UpdateSettingsRequest{WorkStartTime: strPtr("25:99")})
	assert.ErrorAs(t, err, &validationErrs)

	_, err = service.Update(ctx, settings.UpdateSettingsRequest{RecognitionThreshold: strPtr("1.5")})
	assert.ErrorAs(t, err, &validationErrs)

	_, err = service.Update(ctx, settings.UpdateSettingsRequest{GracePeriodMinutes: intPtr(-1)})
	assert.ErrorAs(t, err, &validationErrs)

	_, err = service.Update(ctx, settings.UpdateSettingsRequest{MinTrainingImages: intPtr(0)})
	assert.ErrorAs(t, err, &validationErrs)
}
