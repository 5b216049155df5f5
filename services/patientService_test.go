package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"PALS/models"
	"PALS/utils"
)

func validRegistration() *models.Patient {
	return &models.Patient{
		Name:     "Asha Rao",
		Age:      34,
		Email:    "asha@example.com",
		Password: "correct horse battery",
	}
}

func TestRegisterAssignsCodeAndHashesPassword(t *testing.T) {
	repo := &MockPatientRepository{}
	service := NewPatientService(repo)
	patient := validRegistration()

	code, err := service.Register(context.Background(), patient)

	assert.NoError(t, err)
	assert.Regexp(t, `^\d{4}$`, code)
	assert.Equal(t, code, patient.Code)
	assert.NotEqual(t, "correct horse battery", patient.Password)
	assert.True(t, utils.CheckPassword(patient.Password, "correct horse battery"))
	assert.Equal(t, int32(1), repo.CreateCallCount)
}

func TestRegisterRerollsCollidingCode(t *testing.T) {
	seen := 0
	repo := &MockPatientRepository{
		CodeExistsFunc: func(ctx context.Context, code string) (bool, error) {
			seen++
			return seen == 1, nil
		},
	}
	service := NewPatientService(repo)

	code, err := service.Register(context.Background(), validRegistration())

	assert.NoError(t, err)
	assert.Regexp(t, `^\d{4}$`, code)
	assert.Equal(t, 2, seen)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &MockPatientRepository{
		EmailExistsFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}
	service := NewPatientService(repo)

	_, err := service.Register(context.Background(), validRegistration())

	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.Equal(t, int32(0), repo.CreateCallCount)
}

func TestRegisterShortPassword(t *testing.T) {
	service := NewPatientService(&MockPatientRepository{})
	patient := validRegistration()
	patient.Password = "short"

	_, err := service.Register(context.Background(), patient)

	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, err := utils.HashPassword("the right password")
	assert.NoError(t, err)
	repo := &MockPatientRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*models.Patient, error) {
			return &models.Patient{Code: "4821", Email: email, Password: hashed}, nil
		},
	}
	service := NewPatientService(repo)

	_, err = service.Login(context.Background(), "asha@example.com", "the wrong password")
	assert.Error(t, err)

	patient, err := service.Login(context.Background(), "asha@example.com", "the right password")
	assert.NoError(t, err)
	assert.Equal(t, "4821", patient.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := &MockPatientRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*models.Patient, error) {
			return nil, nil
		},
	}
	service := NewPatientService(repo)

	_, err := service.Login(context.Background(), "nobody@example.com", "whatever pass")

	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestGetByCodeMissing(t *testing.T) {
	repo := &MockPatientRepository{
		FindByCodeFunc: func(ctx context.Context, code string) (*models.Patient, error) {
			return nil, nil
		},
	}
	service := NewPatientService(repo)

	_, err := service.GetByCode(context.Background(), "0000")

	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestResetPasswordTooShort(t *testing.T) {
	updated := false
	repo := &MockPatientRepository{
		UpdatePasswordFunc: func(ctx context.Context, email, hashedPassword string) error {
			updated = true
			return nil
		},
	}
	service := NewPatientService(repo)

	err := service.ResetPassword(context.Background(), "asha@example.com", "tiny")

	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.False(t, updated)
}

func TestResetPasswordStoresHash(t *testing.T) {
	var storedHash string
	repo := &MockPatientRepository{
		UpdatePasswordFunc: func(ctx context.Context, email, hashedPassword string) error {
			storedHash = hashedPassword
			return nil
		},
	}
	service := NewPatientService(repo)

	err := service.ResetPassword(context.Background(), "asha@example.com", "a brand new password")

	assert.NoError(t, err)
	assert.NotEqual(t, "a brand new password", storedHash)
	assert.True(t, utils.CheckPassword(storedHash, "a brand new password"))
}
