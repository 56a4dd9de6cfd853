package settings

import (
	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

type SettingsResponse struct {
	ID                   string `json:"id"`
	WorkStartTime        string `json:"workStartTime"`
	WorkEndTime          string `json:"workEndTime"`
	LunchStartTime       string `json:"lunchStartTime"`
	LunchEndTime         string `json:"lunchEndTime"`
	GracePeriodMinutes   int    `json:"gracePeriodMinutes"`
	MaxLatePeriodMinutes int    `json:"maxLatePeriodMinutes"`
	RecognitionThreshold string `json:"recognitionThreshold"`
	MinTrainingImages    int    `json:"minTrainingImages"`
	EmailNotifications   bool   `json:"emailNotifications"`
	DailyReports         bool   `json:"dailyReports"`
	WeeklyReports        bool   `json:"weeklyReports"`
}

func NewSettingsResponse(s SystemSettings) SettingsResponse {
	return SettingsResponse{
		ID:                   s.ID,
		WorkStartTime:        s.WorkStartTime,
		WorkEndTime:          s.WorkEndTime,
		LunchStartTime:       s.LunchStartTime,
		LunchEndTime:         s.LunchEndTime,
		GracePeriodMinutes:   s.GracePeriodMinutes,
		MaxLatePeriodMinutes: s.MaxLatePeriodMinutes,
		RecognitionThreshold: s.RecognitionThreshold,
		MinTrainingImages:    s.MinTrainingImages,
		EmailNotifications:   s.EmailNotifications,
		DailyReports:         s.DailyReports,
		WeeklyReports:        s.WeeklyReports,
	}
}

// UpdateSettingsRequest is a shallow merge: nil fields leave the stored
// value untouched. An empty request is a no-op returning current settings.
type UpdateSettingsRequest struct {
	WorkStartTime        *string `json:"workStartTime,omitempty"`
	WorkEndTime          *string `json:"workEndTime,omitempty"`
	LunchStartTime       *string `json:"lunchStartTime,omitempty"`
	LunchEndTime         *string `json:"lunchEndTime,omitempty"`
	GracePeriodMinutes   *int    `json:"gracePeriodMinutes,omitempty"`
	MaxLatePeriodMinutes *int    `json:"maxLatePeriodMinutes,omitempty"`
	RecognitionThreshold *string `json:"recognitionThreshold,omitempty"`
	MinTrainingImages    *int    `json:"minTrainingImages,omitempty"`
	EmailNotifications   *bool   `json:"emailNotifications,omitempty"`
	DailyReports         *bool   `json:"dailyReports,omitempty"`
	WeeklyReports        *bool   `json:"weeklyReports,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	clockFields := map[string]*string{
		"workStartTime":  r.WorkStartTime,
		"workEndTime":    r.WorkEndTime,
		"lunchStartTime": r.LunchStartTime,
		"lunchEndTime":   r.LunchEndTime,
	}
	for field, value := range clockFields {
		if value != nil && !validator.IsValidClockTime(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM format",
			})
		}
	}

	if r.GracePeriodMinutes != nil && *r.GracePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "gracePeriodMinutes",
			Message: "gracePeriodMinutes must not be negative",
		})
	}
	if r.MaxLatePeriodMinutes != nil && *r.MaxLatePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "maxLatePeriodMinutes",
			Message: "maxLatePeriodMinutes must not be negative",
		})
	}
	if r.RecognitionThreshold != nil && !validator.IsValidFraction(*r.RecognitionThreshold) {
		errs = append(errs, validator.ValidationError{
			Field:   "recognitionThreshold",
			Message: "recognitionThreshold must be a decimal between 0.0 and 1.0",
		})
	}
	if r.MinTrainingImages != nil && *r.MinTrainingImages < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "minTrainingImages",
			Message: "minTrainingImages must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
