package utils

import (
	"PALS/models"
	"errors"
	"fmt"
	"log"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation errors
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrUnknownField     = errors.New("unrecognized clinical field name")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
)

// ValidatePatientData validates patient registration data using ozzo-validation.
func ValidatePatientData(patient models.Patient) error {
	err := validation.ValidateStruct(&patient,
		validation.Field(&patient.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&patient.Age, validation.Min(0), validation.Max(150)),
		validation.Field(&patient.Email, validation.Required, is.Email),
		validation.Field(&patient.Password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// ValidateDoctorData validates doctor registration data.
func ValidateDoctorData(doctor models.Doctor) error {
	err := validation.ValidateStruct(&doctor,
		validation.Field(&doctor.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&doctor.Specialization, validation.Required, validation.Length(2, 100)),
		validation.Field(&doctor.Email, validation.Required, is.Email),
		validation.Field(&doctor.Password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// ValidateVisibilityField checks that a visibility update names a
// recognized clinical field. The stored level itself is free-form:
// anything other than "public" reads as hidden.
func ValidateVisibilityField(field string) error {
	if err := validation.Validate(field, validation.Required); err != nil {
		return fmt.Errorf("%w: field is required", ErrValidation)
	}
	if !models.IsRecordField(field) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// validatePassword checks minimum password length.
func validatePassword(value interface{}) error {
	password, _ := value.(string)
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	return nil
}
