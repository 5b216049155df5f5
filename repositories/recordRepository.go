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
	RecordCacheExpiry = 24 * time.Hour
)

// RecordRepository owns the append-only prescription history per patient
// code. Records are amended in place but never deleted; latest-record
// resolution is by creation timestamp, not by the human-entered date.
type RecordRepository interface {
	Append(ctx context.Context, record *models.MedicalRecord) error
	Replace(ctx context.Context, recordID string, fields map[string]string) (*models.MedicalRecord, error)
	Latest(ctx context.Context, code string) (*models.MedicalRecord, error)
	History(ctx context.Context, code string) ([]models.MedicalRecord, error)
}

type recordRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewRecordRepository(db *gorm.DB, cache *cache.Cache) RecordRepository {
	return &recordRepository{db: db, cache: cache}
}

func (r *recordRepository) Append(ctx context.Context, record *models.MedicalRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.SchemaVersion == 0 {
		record.SchemaVersion = models.RecordSchemaV2
	}

	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create medical record: %w", err)
	}

	if err := r.cache.Delete(ctx, r.getLatestCacheKey(record.Code)); err != nil {
		log.Printf("Failed to delete latest record cache: %v", err)
	}
	return nil
}

// Replace amends a record's clinical fields in place. The row keeps its
// identity and created_at, so its position for latest-record resolution
// never moves.
func (r *recordRepository) Replace(ctx context.Context, recordID string, fields map[string]string) (*models.MedicalRecord, error) {
	lockKey := fmt.Sprintf("record_lock:%s", recordID)
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, lockKey, lockValue, 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, errors.New("failed to acquire lock")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	var record models.MedicalRecord
	if err := r.db.First(&record, "id = ?", recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find medical record: %w", err)
	}

	for name, value := range fields {
		record.SetClinicalField(name, value)
	}
	updates := replaceColumns(fields)
	if len(updates) == 0 {
		return &record, nil
	}

	err = r.db.Model(&models.MedicalRecord{}).
		Where("id = ?", recordID).
		Updates(updates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update medical record: %w", err)
	}

	if err := r.cache.Delete(ctx, r.getLatestCacheKey(record.Code)); err != nil {
		log.Printf("Failed to delete latest record cache: %v", err)
	}
	return &record, nil
}

// Latest returns the record with the maximum creation timestamp for code,
// or nil when the patient has no records yet.
func (r *recordRepository) Latest(ctx context.Context, code string) (*models.MedicalRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getLatestCacheKey(code)
	cachedRecord, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedRecord != "" {
		var record models.MedicalRecord
		if err := json.Unmarshal([]byte(cachedRecord), &record); err == nil {
			return &record, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get latest record from cache: %v", err)
	}

	var record models.MedicalRecord
	err = r.db.Where("code = ?", code).
		Order("created_at DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest record: %w", err)
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, recordJSON, RecordCacheExpiry); err != nil {
		log.Printf("Failed to set latest record in cache: %v", err)
	}

	return &record, nil
}

func (r *recordRepository) History(ctx context.Context, code string) ([]models.MedicalRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var records []models.MedicalRecord
	err := r.db.Where("code = ?", code).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get record history: %w", err)
	}
	return records, nil
}

func (r *recordRepository) getLatestCacheKey(code string) string {
	return fmt.Sprintf("latest_record_cache:%s", code)
}

// replaceColumns maps a clinical-field update to its database columns.
// Only clinical columns ever appear here; id, code and created_at stay
// untouched, so an amendment keeps its position in latest-record ordering.
func replaceColumns(fields map[string]string) map[string]interface{} {
	updates := make(map[string]interface{}, len(fields))
	for name, value := range fields {
		updates[columnForField(name)] = value
	}
	return updates
}

// columnForField maps a clinical field name to its database column.
func columnForField(name string) string {
	switch name {
	case models.FieldReportNo:
		return "report_no"
	default:
		return name
	}
}
