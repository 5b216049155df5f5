package repositories

import (
	"PALS/models"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// VisitHistoryRepository is the append-only ledger of disclosure events.
// Rows are never updated or deleted.
type VisitHistoryRepository interface {
	Record(ctx context.Context, event *models.VisitHistory) error
	HistoryFor(ctx context.Context, code string) ([]models.VisitHistory, error)
}

type visitHistoryRepository struct {
	db *gorm.DB
}

func NewVisitHistoryRepository(db *gorm.DB) VisitHistoryRepository {
	return &visitHistoryRepository{db: db}
}

func (r *visitHistoryRepository) Record(ctx context.Context, event *models.VisitHistory) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("failed to record visit: %w", err)
	}
	return nil
}

func (r *visitHistoryRepository) HistoryFor(ctx context.Context, code string) ([]models.VisitHistory, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var history []models.VisitHistory
	err := r.db.Where("patient_code = ?", code).
		Order("viewed_at DESC").
		Find(&history).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get visit history: %w", err)
	}
	return history, nil
}
