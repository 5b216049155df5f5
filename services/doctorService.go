package services

import (
	"PALS/models"
	"PALS/repositories"
	"PALS/utils"
	"context"
	"errors"
	"fmt"
)

type DoctorService struct {
	repository repositories.DoctorRepository
}

func NewDoctorService(repository repositories.DoctorRepository) *DoctorService {
	return &DoctorService{repository: repository}
}

// Register validates the profile, hashes the password and stores the
// doctor.
func (s *DoctorService) Register(ctx context.Context, doctor *models.Doctor) error {
	if err := utils.ValidateDoctorData(*doctor); err != nil {
		return err
	}

	exists, err := s.repository.EmailExists(ctx, doctor.Email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: email already registered", utils.ErrValidation)
	}

	hashedPassword, err := utils.HashPassword(doctor.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	doctor.Password = hashedPassword

	return s.repository.Create(ctx, doctor)
}

func (s *DoctorService) Login(ctx context.Context, email, password string) (*models.Doctor, error) {
	doctor, err := s.repository.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	if doctor == nil {
		return nil, fmt.Errorf("doctor: %w", utils.ErrNotFound)
	}
	if !utils.CheckPassword(doctor.Password, password) {
		return nil, errors.New("invalid email or password")
	}
	return doctor, nil
}

func (s *DoctorService) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	doctor, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, fmt.Errorf("doctor %s: %w", id, utils.ErrNotFound)
	}
	return doctor, nil
}
