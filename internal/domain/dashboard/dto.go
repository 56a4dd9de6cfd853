package dashboard

// StatsResponse is the day-scoped dashboard payload. Absent is derived by
// subtraction (total - present - late), clamped at zero; employees without
// a record today are counted as absent.
type StatsResponse struct {
	TotalEmployees int `json:"totalEmployees"`
	OnTime         int `json:"onTime"`
	Absent         int `json:"absent"`
	LateArrival    int `json:"lateArrival"`
	EarlyDeparture int `json:"earlyDeparture"`
	TimeOff        int `json:"timeOff"`
}
