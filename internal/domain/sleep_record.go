package domain

import (
	"math"
	"time"

	"github.com/blaisecz/sleep-bot/pkg/clock"
	"github.com/google/uuid"
)

// DateLayout is the calendar date format a record is keyed by.
const DateLayout = "2006-01-02"

// SleepRecord is one night of sleep: the bedtime and wake time reported for a
// calendar date. A user has at most one record per date.
type SleepRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sleep_records_user_date,priority:1" json:"user_id"`
	Date      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_sleep_records_user_date,priority:2" json:"date"`
	SleepTime string    `gorm:"type:varchar(5);not null" json:"sleep_time"`
	WakeTime  string    `gorm:"type:varchar(5);not null" json:"wake_time"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepRecord) TableName() string {
	return "sleep_records"
}

// Clocks parses the stored bedtime and wake time.
func (r *SleepRecord) Clocks() (sleep, wake clock.Clock, err error) {
	if sleep, err = clock.Parse(r.SleepTime); err != nil {
		return clock.Clock{}, clock.Clock{}, err
	}
	if wake, err = clock.Parse(r.WakeTime); err != nil {
		return clock.Clock{}, clock.Clock{}, err
	}
	return sleep, wake, nil
}

// DurationHours is the wraparound-aware time slept, in (0, 24].
func (r *SleepRecord) DurationHours() (float64, error) {
	return clock.ParseDuration(r.SleepTime, r.WakeTime)
}

// LogSleepRequest is the request body for logging a night of sleep.
// @Description Bedtime and wake time for one night. Logging the same date again replaces the earlier record.
type LogSleepRequest struct {
	// Time the user went to bed
	SleepTime string `json:"sleep_time" validate:"required,clock" example:"23:15"`
	// Time the user woke up
	WakeTime string `json:"wake_time" validate:"required,clock" example:"07:10"`
	// Optional calendar date (defaults to today in the user's timezone)
	Date *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-01-16"`
}

// SleepRecordResponse is the response body for a single record.
type SleepRecordResponse struct {
	Date          string    `json:"date" example:"2024-01-16"`
	SleepTime     string    `json:"sleep_time" example:"23:15"`
	WakeTime      string    `json:"wake_time" example:"07:10"`
	DurationHours float64   `json:"duration_hours" example:"7.92"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (r *SleepRecord) ToResponse() SleepRecordResponse {
	hours, _ := r.DurationHours()
	return SleepRecordResponse{
		Date:          r.Date,
		SleepTime:     r.SleepTime,
		WakeTime:      r.WakeTime,
		DurationHours: roundHours(hours),
		UpdatedAt:     r.UpdatedAt,
	}
}

// LogSleepResponse reports the stored record and anything it unlocked.
type LogSleepResponse struct {
	Record SleepRecordResponse `json:"record"`
	// True when a record for the same date already existed and was overwritten
	Replaced bool `json:"replaced" example:"false"`
	// Achievements granted by this record, in rule order
	NewAchievements []string `json:"new_achievements" example:"Sleepy novice,Perfect sleep"`
}

// TodayResponse tells whether a record exists for the user's current date.
type TodayResponse struct {
	Date   string               `json:"date" example:"2024-01-16"`
	Logged bool                 `json:"logged"`
	Record *SleepRecordResponse `json:"record,omitempty"`
}

// SleepRecordListResponse is the response body for listing records.
type SleepRecordListResponse struct {
	Data       []SleepRecordResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJkYXRlIjoiMjAyNC0wMS0xNSJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SleepRecordFilter contains filter parameters for listing records.
// From and To are inclusive calendar dates.
type SleepRecordFilter struct {
	From   string
	To     string
	Limit  int
	Cursor string
}

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
