package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/google/uuid"
)

func TestReportService_Build(t *testing.T) {
	records := NewMockSleepRecordRepository()
	users := NewMockUserRepository()
	svc := NewReportService(records, users)
	userID := users.AddUser("UTC")
	ctx := context.Background()

	if _, err := svc.Build(ctx, userID, domain.ReportWeekly); !errors.Is(err, domain.ErrNoData) {
		t.Errorf("expected ErrNoData, got %v", err)
	}

	records.AddRecords(userID, "2024-01-01", repeatNight(5, "01:00", "05:00")...)
	records.AddRecords(userID, "2024-01-06",
		[2]string{"23:00", "07:00"},
		[2]string{"23:00", "06:00"},
		[2]string{"22:00", "07:00"},
		[2]string{"23:00", "07:00"},
		[2]string{"23:00", "07:00"},
		[2]string{"23:00", "07:00"},
		[2]string{"23:00", "07:00"},
	)

	weekly, err := svc.Build(ctx, userID, domain.ReportWeekly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if weekly.Nights != 7 || len(weekly.Points) != 7 {
		t.Fatalf("expected 7 nights, got %d (%d points)", weekly.Nights, len(weekly.Points))
	}
	if weekly.Points[0].Date != "2024-01-06" {
		t.Errorf("expected the window to start at 2024-01-06, got %s", weekly.Points[0].Date)
	}
	if weekly.Duration.Min != 7 || weekly.Duration.Max != 9 || weekly.Duration.Avg != 8 {
		t.Errorf("unexpected stats %+v", weekly.Duration)
	}

	monthly, err := svc.Build(ctx, userID, domain.ReportMonthly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if monthly.Nights != 12 {
		t.Errorf("expected all 12 nights in the monthly report, got %d", monthly.Nights)
	}

	if _, err := svc.Build(ctx, userID, "yearly"); !errors.Is(err, domain.ErrInvalidPeriod) {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}
	if _, err := svc.Build(ctx, uuid.New(), domain.ReportWeekly); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestComputeStats(t *testing.T) {
	stats := computeStats([]float64{6, 8, 10})
	if stats.Avg != 8 || stats.Min != 6 || stats.Max != 10 || stats.Std != 2 {
		t.Errorf("unexpected stats %+v", stats)
	}

	single := computeStats([]float64{7.5})
	if single.Std != 0 || single.Avg != 7.5 {
		t.Errorf("unexpected single-value stats %+v", single)
	}

	if empty := computeStats(nil); empty != (domain.DescriptiveStats{}) {
		t.Errorf("expected zero stats, got %+v", empty)
	}

	rounded := computeStats([]float64{1.0 / 3})
	if math.Abs(rounded.Avg-0.33) > 1e-9 {
		t.Errorf("expected two-decimal rounding, got %v", rounded.Avg)
	}
}
