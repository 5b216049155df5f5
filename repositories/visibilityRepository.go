package repositories

import (
	"PALS/cache"
	"PALS/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	VisibilityCacheExpiry = 24 * time.Hour
)

// VisibilityRepository owns the per-patient field-visibility settings.
// Policies are created lazily on first read and are never deleted.
type VisibilityRepository interface {
	GetPolicy(ctx context.Context, code string) (*models.VisibilityPolicy, error)
	SetField(ctx context.Context, code, field, level string) (*models.VisibilityPolicy, error)
}

type visibilityRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewVisibilityRepository(db *gorm.DB, cache *cache.Cache) VisibilityRepository {
	return &visibilityRepository{db: db, cache: cache}
}

// GetPolicy returns the policy for code, creating default "public" rows
// for every recognized field if none exist yet. The insert uses ON
// CONFLICT DO NOTHING so concurrent first reads for the same code cannot
// produce duplicate rows.
func (r *visibilityRepository) GetPolicy(ctx context.Context, code string) (*models.VisibilityPolicy, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPolicyCacheKey(code)
	cachedPolicy, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedPolicy != "" {
		var policy models.VisibilityPolicy
		if err := json.Unmarshal([]byte(cachedPolicy), &policy); err == nil {
			return &policy, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get visibility policy from cache: %v", err)
	}

	settings, err := r.loadSettings(code)
	if err != nil {
		return nil, err
	}

	if len(settings) == 0 {
		defaults := make([]models.VisibilitySetting, 0, len(models.RecordFields))
		for _, field := range models.RecordFields {
			defaults = append(defaults, models.VisibilitySetting{
				Code:  code,
				Field: field,
				Level: models.VisibilityPublic,
			})
		}
		err = r.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}, {Name: "field"}},
			DoNothing: true,
		}).Create(&defaults).Error
		if err != nil {
			return nil, fmt.Errorf("failed to create default visibility settings: %w", err)
		}
		settings, err = r.loadSettings(code)
		if err != nil {
			return nil, err
		}
	}

	policy := assemblePolicy(code, settings)

	policyJSON, err := json.Marshal(policy)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal visibility policy: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, policyJSON, VisibilityCacheExpiry); err != nil {
		log.Printf("Failed to set visibility policy in cache: %v", err)
	}

	return policy, nil
}

// SetField upserts one field's level for code. An empty level normalizes
// to "public"; unrecognized field names are stored as-is, callers are
// responsible for validating them.
func (r *visibilityRepository) SetField(ctx context.Context, code, field, level string) (*models.VisibilityPolicy, error) {
	if level == "" {
		level = models.VisibilityPublic
	}

	setting := models.VisibilitySetting{Code: code, Field: field, Level: level}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}, {Name: "field"}},
		DoUpdates: clause.AssignmentColumns([]string{"level", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update visibility setting: %w", err)
	}

	if err := r.cache.Delete(ctx, r.getPolicyCacheKey(code)); err != nil {
		log.Printf("Failed to delete visibility policy cache: %v", err)
	}

	return r.GetPolicy(ctx, code)
}

func (r *visibilityRepository) loadSettings(code string) ([]models.VisibilitySetting, error) {
	var settings []models.VisibilitySetting
	err := r.db.Select("id, code, field, level").
		Where("code = ?", code).
		Find(&settings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get visibility settings: %w", err)
	}
	return settings, nil
}

// assemblePolicy folds setting rows into a policy map. Recognized fields
// with no row resolve to "public" so the field set can grow without a
// data migration of old rows.
func assemblePolicy(code string, settings []models.VisibilitySetting) *models.VisibilityPolicy {
	policy := models.DefaultPolicy(code)
	for _, s := range settings {
		policy.Fields[s.Field] = s.Level
	}
	return policy
}

func (r *visibilityRepository) getPolicyCacheKey(code string) string {
	return fmt.Sprintf("visibility_cache:%s", code)
}
