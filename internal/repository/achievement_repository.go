package repository

import (
	"context"

	"github.com/blaisecz/sleep-bot/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AchievementRepository stores granted badges. Rows are only ever inserted.
type AchievementRepository interface {
	ListNames(ctx context.Context, userID uuid.UUID) (domain.AchievementSet, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Achievement, error)
	// Grant inserts the badge unless the user already holds it and reports
	// whether a row was written.
	Grant(ctx context.Context, userID uuid.UUID, name string) (bool, error)
}

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) ListNames(ctx context.Context, userID uuid.UUID) (domain.AchievementSet, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&domain.Achievement{}).
		Where("user_id = ?", userID).
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return domain.NewAchievementSet(names...), nil
}

func (r *achievementRepository) List(ctx context.Context, userID uuid.UUID) ([]domain.Achievement, error) {
	var achievements []domain.Achievement
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("granted_at ASC").
		Find(&achievements).Error
	return achievements, err
}

func (r *achievementRepository) Grant(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.Achievement{UserID: userID, Name: name})
	return result.RowsAffected > 0, result.Error
}
