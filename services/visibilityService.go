package services

import (
	"PALS/models"
	"PALS/repositories"
	"PALS/utils"
	"context"
)

type VisibilityService struct {
	repository repositories.VisibilityRepository
}

func NewVisibilityService(repository repositories.VisibilityRepository) *VisibilityService {
	return &VisibilityService{repository: repository}
}

// GetPolicy returns the policy for code, creating all-public defaults on
// first read.
func (s *VisibilityService) GetPolicy(ctx context.Context, code string) (*models.VisibilityPolicy, error) {
	return s.repository.GetPolicy(ctx, code)
}

// SetField updates one field's visibility level. The field must be a
// recognized clinical field; an empty level normalizes to "public".
func (s *VisibilityService) SetField(ctx context.Context, code, field, level string) (*models.VisibilityPolicy, error) {
	if err := utils.ValidateVisibilityField(field); err != nil {
		return nil, err
	}
	return s.repository.SetField(ctx, code, field, level)
}
