package services

import (
	"PALS/models"
	"PALS/repositories"
	"context"
)

type VisitHistoryService struct {
	repository repositories.VisitHistoryRepository
}

func NewVisitHistoryService(repository repositories.VisitHistoryRepository) *VisitHistoryService {
	return &VisitHistoryService{repository: repository}
}

// HistoryFor returns the patient-visible visit history, newest first.
func (s *VisitHistoryService) HistoryFor(ctx context.Context, code string) ([]models.VisitHistory, error) {
	return s.repository.HistoryFor(ctx, code)
}
