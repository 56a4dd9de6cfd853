package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/facetrack/attendance-backend-go/internal/domain/settings"
)

type settingsRepositoryImpl struct {
	store *Store
}

func NewSettingsRepository(store *Store) settings.SettingsRepository {
	return &settingsRepositoryImpl{store: store}
}

// Get implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Get(ctx context.Context) (settings.SystemSettings, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if r.store.systemSettings == nil {
		return settings.SystemSettings{}, settings.ErrSettingsNotFound
	}
	return *r.store.systemSettings, nil
}

// Update implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SystemSettings, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.systemSettings == nil {
		defaults := settings.Defaults()
		defaults.ID = uuid.NewString()
		r.store.systemSettings = &defaults
	}

	current := r.store.systemSettings
	if req.WorkStartTime != nil {
		current.WorkStartTime = *req.WorkStartTime
	}
	if req.WorkEndTime != nil {
		current.WorkEndTime = *req.WorkEndTime
	}
	if req.LunchStartTime != nil {
		current.LunchStartTime = *req.LunchStartTime
	}
	if req.LunchEndTime != nil {
		current.LunchEndTime = *req.LunchEndTime
	}
	if req.GracePeriodMinutes != nil {
		current.GracePeriodMinutes = *req.GracePeriodMinutes
	}
	if req.MaxLatePeriodMinutes != nil {
		current.MaxLatePeriodMinutes = *req.MaxLatePeriodMinutes
	}
	if req.RecognitionThreshold != nil {
		current.RecognitionThreshold = *req.RecognitionThreshold
	}
	if req.MinTrainingImages != nil {
		current.MinTrainingImages = *req.MinTrainingImages
	}
	if req.EmailNotifications != nil {
		current.EmailNotifications = *req.EmailNotifications
	}
	if req.DailyReports != nil {
		current.DailyReports = *req.DailyReports
	}
	if req.WeeklyReports != nil {
		current.WeeklyReports = *req.WeeklyReports
	}

	return *current, nil
}
