package settings

import "context"

type SettingsRepository interface {
	Get(ctx context.Context) (SystemSettings, error)
	// Update creates the singleton with defaults if absent, then merges the
	// request's non-nil fields over it.
	Update(ctx context.Context, req UpdateSettingsRequest) (SystemSettings, error)
}
