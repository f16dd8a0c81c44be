package domain

import (
	"errors"
	"testing"

	"github.com/blaisecz/sleep-bot/pkg/clock"
)

func TestSleepRecord_ToResponse(t *testing.T) {
	tests := []struct {
		name         string
		record       SleepRecord
		wantDuration float64
	}{
		{
			name:         "across midnight",
			record:       SleepRecord{Date: "2024-01-16", SleepTime: "23:15", WakeTime: "07:10"},
			wantDuration: 7.92,
		},
		{
			name:         "same day nap",
			record:       SleepRecord{Date: "2024-01-16", SleepTime: "13:00", WakeTime: "14:30"},
			wantDuration: 1.5,
		},
		{
			name:         "equal times are a full day",
			record:       SleepRecord{Date: "2024-01-16", SleepTime: "07:00", WakeTime: "07:00"},
			wantDuration: 24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := tt.record.ToResponse()
			if resp.DurationHours != tt.wantDuration {
				t.Errorf("DurationHours = %v, want %v", resp.DurationHours, tt.wantDuration)
			}
			if resp.Date != tt.record.Date || resp.SleepTime != tt.record.SleepTime || resp.WakeTime != tt.record.WakeTime {
				t.Errorf("fields not copied: %+v", resp)
			}
		})
	}
}

func TestSleepRecord_ClocksRejectsMalformed(t *testing.T) {
	r := SleepRecord{SleepTime: "23:00", WakeTime: "7am"}
	if _, _, err := r.Clocks(); !errors.Is(err, clock.ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat, got %v", err)
	}
	if _, err := r.DurationHours(); !errors.Is(err, clock.ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestAchievementSet(t *testing.T) {
	set := NewAchievementSet(BadgeSleepyNovice)
	if !set.Has(BadgeSleepyNovice) || set.Has(BadgeNightOwl) {
		t.Fatalf("unexpected membership: %v", set)
	}
	set.Add(BadgeNightOwl)
	set.Add(BadgeNightOwl)
	if len(set) != 2 {
		t.Errorf("expected 2 badges, got %d", len(set))
	}
}

func TestAchievement_ToResponse(t *testing.T) {
	a := Achievement{Name: BadgePerfectSleep}
	resp := a.ToResponse()
	if resp.Description != "Slept between 7 and 9 hours last night" {
		t.Errorf("unexpected description %q", resp.Description)
	}
	if resp.ShareText != "I earned a new achievement 'Perfect sleep' in the sleep tracking bot!" {
		t.Errorf("unexpected share text %q", resp.ShareText)
	}
	if BadgeDescription("Unknown") != "" {
		t.Error("unknown badge should have no description")
	}
}

func TestReportPeriod_Nights(t *testing.T) {
	tests := []struct {
		period  ReportPeriod
		want    int
		wantErr bool
	}{
		{ReportWeekly, 7, false},
		{ReportMonthly, 30, false},
		{"yearly", 0, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			got, err := tt.period.Nights()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPeriod) {
					t.Errorf("expected ErrInvalidPeriod, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("Nights() = %d, %v; want %d", got, err, tt.want)
			}
		})
	}
}

func TestTimeFieldError(t *testing.T) {
	_, parseErr := clock.Parse("25:00")
	err := error(&TimeFieldError{Field: "wake_time", Err: parseErr})

	var fieldErr *TimeFieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "wake_time" {
		t.Fatalf("errors.As failed for %v", err)
	}
	if !errors.Is(err, clock.ErrInvalidFormat) {
		t.Error("expected wrapped ErrInvalidFormat")
	}
}
