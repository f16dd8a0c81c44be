package domain

// ReportPeriod selects how many of the most recent records a report covers.
type ReportPeriod string

const (
	ReportWeekly  ReportPeriod = "weekly"
	ReportMonthly ReportPeriod = "monthly"
)

// Nights returns the number of most recent records the period covers.
func (p ReportPeriod) Nights() (int, error) {
	switch p {
	case ReportWeekly:
		return 7, nil
	case ReportMonthly:
		return 30, nil
	}
	return 0, ErrInvalidPeriod
}

// DescriptiveStats summarises a series of durations.
type DescriptiveStats struct {
	Avg float64 `json:"avg" example:"7.2"`
	Std float64 `json:"std" example:"0.8"`
	Min float64 `json:"min" example:"5.5"`
	Max float64 `json:"max" example:"9.0"`
}

// ReportPoint is one night of the duration series, ready for charting.
type ReportPoint struct {
	Date          string  `json:"date" example:"2024-01-16"`
	SleepTime     string  `json:"sleep_time" example:"23:15"`
	WakeTime      string  `json:"wake_time" example:"07:10"`
	DurationHours float64 `json:"duration_hours" example:"7.92"`
}

// Report is the duration series and its summary for a period.
type Report struct {
	Period   ReportPeriod     `json:"period" example:"weekly"`
	Nights   int              `json:"nights" example:"7"`
	Duration DescriptiveStats `json:"duration"`
	Points   []ReportPoint    `json:"points"`
}

// ScheduleEntry recommends bedtimes for one wake time.
type ScheduleEntry struct {
	WakeTime string   `json:"wake_time" example:"07:00"`
	Bedtimes []string `json:"bedtimes" example:"21:45,23:15"`
}

// ScheduleResponse lists bedtime recommendations.
type ScheduleResponse struct {
	Data []ScheduleEntry `json:"data"`
}
