package service

import (
	"context"
	"math"

	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/internal/repository"
	"github.com/google/uuid"
)

// ReportService builds the duration series behind the weekly and monthly charts.
type ReportService interface {
	Build(ctx context.Context, userID uuid.UUID, period domain.ReportPeriod) (*domain.Report, error)
}

type reportService struct {
	recordRepo repository.SleepRecordRepository
	userRepo   repository.UserRepository
}

func NewReportService(recordRepo repository.SleepRecordRepository, userRepo repository.UserRepository) ReportService {
	return &reportService{recordRepo: recordRepo, userRepo: userRepo}
}

func (s *reportService) Build(ctx context.Context, userID uuid.UUID, period domain.ReportPeriod) (*domain.Report, error) {
	nights, err := period.Nights()
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	records, err := s.recordRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrNoData
	}
	if len(records) > nights {
		records = records[len(records)-nights:]
	}

	report := &domain.Report{
		Period: period,
		Nights: len(records),
		Points: make([]domain.ReportPoint, len(records)),
	}
	durations := make([]float64, len(records))
	for i := range records {
		hours, err := records[i].DurationHours()
		if err != nil {
			return nil, err
		}
		durations[i] = hours
		report.Points[i] = domain.ReportPoint{
			Date:          records[i].Date,
			SleepTime:     records[i].SleepTime,
			WakeTime:      records[i].WakeTime,
			DurationHours: math.Round(hours*100) / 100,
		}
	}
	report.Duration = computeStats(durations)

	return report, nil
}

// computeStats calculates descriptive statistics for a slice of values.
func computeStats(values []float64) domain.DescriptiveStats {
	if len(values) == 0 {
		return domain.DescriptiveStats{}
	}

	sum := 0.0
	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		sum += v
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	avg := sum / float64(len(values))

	// Sample standard deviation
	std := 0.0
	if len(values) > 1 {
		sumSquares := 0.0
		for _, v := range values {
			diff := v - avg
			sumSquares += diff * diff
		}
		std = math.Sqrt(sumSquares / float64(len(values)-1))
	}

	return domain.DescriptiveStats{
		Avg: math.Round(avg*100) / 100,
		Std: math.Round(std*100) / 100,
		Min: math.Round(minVal*100) / 100,
		Max: math.Round(maxVal*100) / 100,
	}
}
