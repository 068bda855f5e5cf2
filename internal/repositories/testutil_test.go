package repositories

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"prepview/interview-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn+"?_pragma=busy_timeout(10000)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// A single connection keeps concurrent writers from tripping over
	// SQLITE_BUSY; the queries under test stay unchanged.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.Interview{},
		&models.VideoAnswer{},
		&models.Response{},
		&models.Video{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedInterview(t *testing.T, repo InterviewRepository, userID, jobTitle string) *models.Interview {
	t.Helper()

	interview := &models.Interview{
		ID:        uuid.New(),
		UserID:    userID,
		JobTitle:  jobTitle,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := repo.Create(interview); err != nil {
		t.Fatalf("seed interview: %v", err)
	}
	return interview
}
