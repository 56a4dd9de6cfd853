package settings

// SystemSettings is a singleton: at most one record exists, created lazily
// with these defaults on the first update if absent.
type SystemSettings struct {
	ID                   string
	WorkStartTime        string
	WorkEndTime          string
	LunchStartTime       string
	LunchEndTime         string
	GracePeriodMinutes   int
	MaxLatePeriodMinutes int
	RecognitionThreshold string
	MinTrainingImages    int
	EmailNotifications   bool
	DailyReports         bool
	WeeklyReports        bool
}

// Defaults returns the settings the system starts with, without an id.
func Defaults() SystemSettings {
	return SystemSettings{
		WorkStartTime:        "08:00",
		WorkEndTime:          "17:00",
		LunchStartTime:       "12:00",
		LunchEndTime:         "13:00",
		GracePeriodMinutes:   5,
		MaxLatePeriodMinutes: 60,
		RecognitionThreshold: "0.85",
		MinTrainingImages:    2,
		EmailNotifications:   true,
		DailyReports:         true,
		WeeklyReports:        false,
	}
}
