package services

import (
	"PALS/models"
	"PALS/repositories"
	"PALS/utils"
	"context"
	"fmt"
)

// ManageView pairs a patient's latest record with their visibility policy
// for the self-service management screen.
type ManageView struct {
	Prescription *models.MedicalRecord    `json:"prescription"`
	Visibility   *models.VisibilityPolicy `json:"visibility"`
}

type RecordService struct {
	recordRepo     repositories.RecordRepository
	visibilityRepo repositories.VisibilityRepository
}

func NewRecordService(recordRepo repositories.RecordRepository, visibilityRepo repositories.VisibilityRepository) *RecordService {
	return &RecordService{recordRepo: recordRepo, visibilityRepo: visibilityRepo}
}

// Append stores a new record for code from a field-name→value map. Field
// names must be recognized clinical fields.
func (s *RecordService) Append(ctx context.Context, code string, fields map[string]string) (*models.MedicalRecord, error) {
	if err := validateFieldNames(fields); err != nil {
		return nil, err
	}

	record := &models.MedicalRecord{Code: code, SchemaVersion: models.RecordSchemaV2}
	for name, value := range fields {
		record.SetClinicalField(name, value)
	}

	if err := s.recordRepo.Append(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Replace amends the named record's fields in place. The record keeps its
// creation timestamp, so an amendment never becomes the "latest" record by
// virtue of being edited.
func (s *RecordService) Replace(ctx context.Context, recordID string, fields map[string]string) (*models.MedicalRecord, error) {
	if err := validateFieldNames(fields); err != nil {
		return nil, err
	}

	record, err := s.recordRepo.Replace(ctx, recordID, fields)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("record %s: %w", recordID, utils.ErrNotFound)
	}
	return record, nil
}

func (s *RecordService) Latest(ctx context.Context, code string) (*models.MedicalRecord, error) {
	return s.recordRepo.Latest(ctx, code)
}

func (s *RecordService) History(ctx context.Context, code string) ([]models.MedicalRecord, error) {
	return s.recordRepo.History(ctx, code)
}

// Manage returns the latest record (possibly nil) together with the
// policy, creating default visibility rows if needed.
func (s *RecordService) Manage(ctx context.Context, code string) (*ManageView, error) {
	record, err := s.recordRepo.Latest(ctx, code)
	if err != nil {
		return nil, err
	}
	policy, err := s.visibilityRepo.GetPolicy(ctx, code)
	if err != nil {
		return nil, err
	}
	return &ManageView{Prescription: record, Visibility: policy}, nil
}

func validateFieldNames(fields map[string]string) error {
	for name := range fields {
		if !models.IsRecordField(name) {
			return fmt.Errorf("%w: %q", utils.ErrUnknownField, name)
		}
	}
	return nil
}
