package repositories

import (
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"PALS/cache"
	"PALS/database"
	"PALS/models"
)

// testStore opens the integration test database and cache. Tests calling
// it are skipped unless TEST_DB_URL and REDIS_URL point at live services.
func testStore(t *testing.T) (*gorm.DB, *cache.Cache) {
	t.Helper()

	dsn := os.Getenv("TEST_DB_URL")
	if dsn == "" || os.Getenv("REDIS_URL") == "" {
		t.Skip("TEST_DB_URL and REDIS_URL are required for store tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.MedicalRecord{},
		&models.VisibilitySetting{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if database.RedisClient == nil {
		if err := database.InitializeRedis(); err != nil {
			t.Fatalf("failed to initialize test redis: %v", err)
		}
	}
	c, err := cache.NewCache()
	if err != nil {
		t.Fatalf("failed to initialize test cache: %v", err)
	}

	return db, c
}
