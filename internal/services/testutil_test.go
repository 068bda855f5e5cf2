package services

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"prepview/interview-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("service_test_%d.db", time.Now().UnixNano()))
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

// fakeGemini returns a canned response without calling the real backend.
type fakeGemini struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeGemini) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	return f.GenerateText(ctx, prompt, temperature)
}

// fakePDFParser sidesteps real PDF decoding.
type fakePDFParser struct {
	text string
	err  error
}

func (f *fakePDFParser) ExtractText(filepath string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}
