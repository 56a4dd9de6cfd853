package attendance

import "time"

// Date is a calendar day string ("YYYY-MM-DD"); records for a day are
// matched by string equality. CheckIn/CheckOut are free-form clock times.
// Notes doubles as a signal: the dashboard matches the substrings "late"
// and "early" inside it, independent of Status.
type Attendance struct {
	ID           string
	EmployeeID   *string
	Date         string
	CheckIn      *string
	CheckOut     *string
	WorkingHours *string
	Status       string
	Notes        *string
	CreatedAt    time.Time
}

const (
	StatusPresent        = "present"
	StatusLate           = "late"
	StatusAbsent         = "absent"
	StatusTimeOff        = "time_off"
	StatusEarlyDeparture = "early_departure"
)

func ValidStatuses() []string {
	return []string{StatusPresent, StatusLate, StatusAbsent, StatusTimeOff, StatusEarlyDeparture}
}
