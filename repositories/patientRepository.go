package repositories

import (
	"PALS/cache"
	"PALS/database"
	"PALS/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PatientCacheExpiry = 7 * 24 * time.Hour
)

// PatientRepository owns patient accounts. FindByCode never loads the
// password column; only FindByEmail does, for credential checks.
type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	FindByCode(ctx context.Context, code string) (*models.Patient, error)
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	UpdatePassword(ctx context.Context, email, hashedPassword string) error
}

type patientRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPatientRepository(db *gorm.DB, cache *cache.Cache) PatientRepository {
	return &patientRepository{db: db, cache: cache}
}

func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) error {
	lockKey := fmt.Sprintf("patient_lock:%s", patient.Email)
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return errors.New("failed to acquire lock")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	if err := r.db.Create(patient).Error; err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) FindByCode(ctx context.Context, code string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientCacheKey(code)
	cachedPatient, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedPatient != "" {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cachedPatient), &patient); err == nil {
			return &patient, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get patient from cache: %v", err)
	}

	var patient models.Patient
	err = r.db.Select("id, code, name, age, blood_group, allergies, conditions, medications, emergency_contact, email, profile_photo, created_at").
		Where("code = ?", code).
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	patientJSON, err := json.Marshal(patient)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patient: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patient in cache: %v", err)
	}

	return &patient, nil
}

func (r *patientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("email = ?", email).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient by email: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

func (r *patientRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).Where("code = ?", code).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}
	return count > 0, nil
}

func (r *patientRepository) UpdatePassword(ctx context.Context, email, hashedPassword string) error {
	var patient models.Patient
	if err := r.db.Select("id, code").Where("email = ?", email).First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("patient not found")
		}
		return fmt.Errorf("failed to find patient: %w", err)
	}

	err := r.db.Model(&models.Patient{}).
		Where("email = ?", email).
		Update("password", hashedPassword).Error
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := r.cache.Delete(ctx, r.getPatientCacheKey(patient.Code)); err != nil {
		log.Printf("Failed to delete patient cache: %v", err)
	}
	return nil
}

func (r *patientRepository) getPatientCacheKey(code string) string {
	return fmt.Sprintf("patient_cache:%s", code)
}
