package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/blaisecz/sleep-bot/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SleepRecordRepository interface {
	// Upsert stores the record, replacing any record for the same user and date.
	// It reports whether an existing record was replaced.
	Upsert(ctx context.Context, record *domain.SleepRecord) (bool, error)
	// ListByUser returns every record of the user, ascending by date.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SleepRecord, error)
	// List returns one page of records, descending by date, plus one extra row
	// when more pages exist.
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error)
	// GetByDate returns nil without error when no record exists for the date.
	GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepRecord, error)
}

type sleepRecordRepository struct {
	db *gorm.DB
}

func NewSleepRecordRepository(db *gorm.DB) SleepRecordRepository {
	return &sleepRecordRepository{db: db}
}

func (r *sleepRecordRepository) Upsert(ctx context.Context, record *domain.SleepRecord) (bool, error) {
	var replaced bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.SleepRecord{}).
			Where("user_id = ? AND date = ?", record.UserID, record.Date).
			Count(&count).Error; err != nil {
			return err
		}
		replaced = count > 0

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"sleep_time", "wake_time", "updated_at"}),
		}).Create(record).Error
	})
	return replaced, err
}

func (r *sleepRecordRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SleepRecord, error) {
	var records []domain.SleepRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func (r *sleepRecordRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC")

	// Dates are ISO formatted, so string comparison is chronological
	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where("date < ?", cursor.Date)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.SleepRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *sleepRecordRepository) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepRecord, error) {
	var record domain.SleepRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
