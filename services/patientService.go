package services

import (
	"PALS/models"
	"PALS/repositories"
	"PALS/utils"
	"context"
	"errors"
	"fmt"
)

// codeRetries bounds how often registration re-rolls a colliding share
// code before giving up.
const codeRetries = 5

type PatientService struct {
	repository repositories.PatientRepository
}

func NewPatientService(repository repositories.PatientRepository) *PatientService {
	return &PatientService{repository: repository}
}

// Register validates the profile, hashes the password, assigns a fresh
// 4-digit share code and stores the patient. Returns the assigned code.
func (s *PatientService) Register(ctx context.Context, patient *models.Patient) (string, error) {
	if err := utils.ValidatePatientData(*patient); err != nil {
		return "", err
	}

	exists, err := s.repository.EmailExists(ctx, patient.Email)
	if err != nil {
		return "", fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return "", fmt.Errorf("%w: email already registered", utils.ErrValidation)
	}

	hashedPassword, err := utils.HashPassword(patient.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	patient.Password = hashedPassword

	code, err := s.freshCode(ctx)
	if err != nil {
		return "", err
	}
	patient.Code = code

	if err := s.repository.Create(ctx, patient); err != nil {
		return "", err
	}
	return code, nil
}

// Login authenticates by email and returns the profile. The password hash
// is never serialized.
func (s *PatientService) Login(ctx context.Context, email, password string) (*models.Patient, error) {
	patient, err := s.repository.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	if patient == nil {
		return nil, fmt.Errorf("patient: %w", utils.ErrNotFound)
	}
	if !utils.CheckPassword(patient.Password, password) {
		return nil, errors.New("invalid email or password")
	}
	return patient, nil
}

// GetByCode returns the patient summary, credentials excluded.
func (s *PatientService) GetByCode(ctx context.Context, code string) (*models.Patient, error) {
	patient, err := s.repository.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, fmt.Errorf("patient %s: %w", code, utils.ErrNotFound)
	}
	return patient, nil
}

// ResetPassword replaces the stored password hash after a verified reset
// code exchange.
func (s *PatientService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: %v", utils.ErrValidation, utils.ErrPasswordTooShort)
	}
	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.repository.UpdatePassword(ctx, email, hashedPassword)
}

// freshCode rolls 4-digit codes until one is unused.
func (s *PatientService) freshCode(ctx context.Context) (string, error) {
	for i := 0; i < codeRetries; i++ {
		code := utils.GeneratePatientCode()
		exists, err := s.repository.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("failed to allocate a unique patient code")
}
