package settings

import (
	"context"

	"github.com/facetrack/attendance-backend-go/internal/domain/settings"
)

type SettingsService interface {
	Get(ctx context.Context) (settings.SettingsResponse, error)
	Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error)
}

type settingsServiceImpl struct {
	settingsRepo settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) SettingsService {
	return &settingsServiceImpl{settingsRepo: settingsRepo}
}

// Get implements SettingsService.
func (s *settingsServiceImpl) Get(ctx context.Context) (settings.SettingsResponse, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}
	return settings.NewSettingsResponse(current), nil
}

// Update implements SettingsService.
func (s *settingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	updated, err := s.settingsRepo.Update(ctx, req)
	if err != nil {
		return settings.SettingsResponse{}, err
	}
	return settings.NewSettingsResponse(updated), nil
}
