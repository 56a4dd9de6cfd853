package postgresql

import (
	"context"
	"errors"

	"github.com/facetrack/attendance-backend-go/internal/domain/settings"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

const settingsColumns = `id, work_start_time, work_end_time, lunch_start_time, lunch_end_time,
		grace_period_minutes, max_late_period_minutes, recognition_threshold, min_training_images,
		email_notifications, daily_reports, weekly_reports`

func scanSettings(row pgx.Row) (settings.SystemSettings, error) {
	var s settings.SystemSettings
	err := row.Scan(
		&s.ID,
		&s.WorkStartTime,
		&s.WorkEndTime,
		&s.LunchStartTime,
		&s.LunchEndTime,
		&s.GracePeriodMinutes,
		&s.MaxLatePeriodMinutes,
		&s.RecognitionThreshold,
		&s.MinTrainingImages,
		&s.EmailNotifications,
		&s.DailyReports,
		&s.WeeklyReports,
	)
	return s, err
}

// Get implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Get(ctx context.Context) (settings.SystemSettings, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanSettings(q.QueryRow(ctx, `SELECT `+settingsColumns+` FROM system_settings LIMIT 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.SystemSettings{}, settings.ErrSettingsNotFound
		}
		return settings.SystemSettings{}, err
	}

	return found, nil
}

// Update implements settings.SettingsRepository.
// Creates the singleton row with defaults when absent, then merges the
// non-nil request fields, all in one transaction.
func (r *settingsRepositoryImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SystemSettings, error) {
	var updated settings.SystemSettings

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		current, err := scanSettings(tx.QueryRow(ctx, `SELECT `+settingsColumns+` FROM system_settings LIMIT 1 FOR UPDATE`))
		if errors.Is(err, pgx.ErrNoRows) {
			defaults := settings.Defaults()
			defaults.ID = uuid.NewString()
			current, err = scanSettings(tx.QueryRow(ctx, `
				INSERT INTO system_settings (`+settingsColumns+`)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
				RETURNING `+settingsColumns,
				defaults.ID,
				defaults.WorkStartTime,
				defaults.WorkEndTime,
				defaults.LunchStartTime,
				defaults.LunchEndTime,
				defaults.GracePeriodMinutes,
				defaults.MaxLatePeriodMinutes,
				defaults.RecognitionThreshold,
				defaults.MinTrainingImages,
				defaults.EmailNotifications,
				defaults.DailyReports,
				defaults.WeeklyReports,
			))
		}
		if err != nil {
			return err
		}

		updated, err = scanSettings(tx.QueryRow(ctx, `
			UPDATE system_settings
			SET work_start_time = COALESCE($2, work_start_time),
				work_end_time = COALESCE($3, work_end_time),
				lunch_start_time = COALESCE($4, lunch_start_time),
				lunch_end_time = COALESCE($5, lunch_end_time),
				grace_period_minutes = COALESCE($6, grace_period_minutes),
				max_late_period_minutes = COALESCE($7, max_late_period_minutes),
				recognition_threshold = COALESCE($8, recognition_threshold),
				min_training_images = COALESCE($9, min_training_images),
				email_notifications = COALESCE($10, email_notifications),
				daily_reports = COALESCE($11, daily_reports),
				weekly_reports = COALESCE($12, weekly_reports)
			WHERE id = $1
			RETURNING `+settingsColumns,
			current.ID,
			req.WorkStartTime,
			req.WorkEndTime,
			req.LunchStartTime,
			req.LunchEndTime,
			req.GracePeriodMinutes,
			req.MaxLatePeriodMinutes,
			req.RecognitionThreshold,
			req.MinTrainingImages,
			req.EmailNotifications,
			req.DailyReports,
			req.WeeklyReports,
		))
		return err
	})
	if err != nil {
		return settings.SystemSettings{}, err
	}

	return updated, nil
}
