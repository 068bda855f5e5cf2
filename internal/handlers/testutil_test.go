package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"sync"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"prepview/interview-api/internal/models"
	"prepview/interview-api/internal/repositories"
	"prepview/interview-api/internal/services"
)

// fakeStorage records uploads and hands back deterministic public URLs.
type fakeStorage struct {
	mu      sync.Mutex
	uploads []storedObject
	err     error
}

type storedObject struct {
	Bucket      string
	Key         string
	ContentType string
	Overwrite   bool
	Size        int
}

func (f *fakeStorage) Upload(ctx context.Context, bucket, key string, data []byte, contentType string, overwrite bool) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.uploads = append(f.uploads, storedObject{
		Bucket:      bucket,
		Key:         key,
		ContentType: contentType,
		Overwrite:   overwrite,
		Size:        len(data),
	})
	return fmt.Sprintf("https://cdn.test/%s/%s", bucket, key), nil
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type stubGemini struct {
	response string
	err      error
}

func (s *stubGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	return s.response, s.err
}

func (s *stubGemini) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	return s.response, s.err
}

type stubPDFParser struct {
	text string
	err  error
}

func (s *stubPDFParser) ExtractText(filepath string) (string, error) {
	return s.text, s.err
}

// testEnv bundles the app with the collaborators tests need to inspect.
type testEnv struct {
	app         *fiber.App
	db          *gorm.DB
	storage     *fakeStorage
	transcriber *fakeTranscriber
	gemini      *stubGemini
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "handlers_test.db")
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

	interviewRepo := repositories.NewInterviewRepository(db)
	answerRepo := repositories.NewVideoAnswerRepository(db)
	responseRepo := repositories.NewResponseRepository(db)
	videoRepo := repositories.NewVideoRepository(db)

	storage := &fakeStorage{}
	transcriber := &fakeTranscriber{text: "transcribed answer"}
	gemini := &stubGemini{response: generatedQuestionsJSON}

	staging := services.NewFileStagingService(t.TempDir())
	store := services.NewQuestionStore()
	generator := services.NewQuestionGeneratorService(gemini, &stubPDFParser{text: "CV TEXT"}, store, 3)
	interviewService := services.NewInterviewService(interviewRepo, answerRepo)

	interviewHandler := NewInterviewHandler(interviewService)
	answerHandler := NewVideoAnswerHandler(interviewService, answerRepo, storage, "interviews")
	responseHandler := NewResponseHandler(responseRepo, storage, transcriber, "responses")
	videoHandler := NewVideoHandler(videoRepo, storage, "interviews")
	questionHandler := NewQuestionHandler(generator, staging, 52428800)

	app := fiber.New()
	api := app.Group("/api")

	api.Post("/interviews", interviewHandler.HandleCreate)
	api.Get("/interviews", interviewHandler.HandleList)
	api.Put("/interviews/last/monitoring", interviewHandler.HandleMonitoringLatest)
	api.Get("/interviews/last/video-answers", interviewHandler.HandleListLatestAnswers)
	api.Get("/interviews/owner/:ownerId", interviewHandler.HandleListByOwner)
	api.Get("/interviews/:id", interviewHandler.HandleGet)
	api.Put("/interviews/:id", interviewHandler.HandleUpdate)
	api.Delete("/interviews/:id", interviewHandler.HandleDelete)
	api.Put("/interviews/:id/monitoring", interviewHandler.HandleMonitoring)
	api.Get("/interviews/:id/video-answers", interviewHandler.HandleListAnswers)

	api.Post("/video-answers", answerHandler.HandleCreate)
	api.Get("/video-answers", answerHandler.HandleList)
	api.Get("/video-answers/:id", answerHandler.HandleGet)
	api.Put("/video-answers/:id/transcription", answerHandler.HandleUpdateTranscription)

	api.Post("/responses", responseHandler.HandleCreate)
	api.Get("/questions/:questionId/responses", responseHandler.HandleListByQuestion)
	api.Put("/responses/:responseId/transcription", responseHandler.HandleUpdateTranscription)

	api.Post("/videos/upload", videoHandler.HandleUpload)
	api.Get("/videos", videoHandler.HandleList)
	api.Get("/videos/interview", videoHandler.HandleListInterviewVideos)
	api.Get("/videos/:id", videoHandler.HandleGet)

	api.Post("/generate-questions", questionHandler.HandleGenerate)
	api.Get("/get-questions", questionHandler.HandleGetQuestions)

	return &testEnv{app: app, db: db, storage: storage, transcriber: transcriber, gemini: gemini}
}

const generatedQuestionsJSON = `{
	"technicalQuestions": [
		{"id": "1", "question": "Explain goroutine scheduling.", "answer": "Expected answer.", "programmingLanguage": "Go", "difficulty": "medium"}
	],
	"softSkillQuestions": [
		{"id": "1", "question": "Describe a conflict you resolved.", "answer": "Expected answer.", "category": "teamwork"}
	]
}`

func (e *testEnv) request(t *testing.T, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.app.Test(req, 10000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()
	return resp, payload
}

type filePart struct {
	field       string
	filename    string
	contentType string
	content     []byte
}

func (e *testEnv) multipartRequest(t *testing.T, path string, fields map[string]string, files ...filePart) (*http.Response, []byte) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	for _, file := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.field, file.filename))
		header.Set("Content-Type", file.contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(file.content); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := e.app.Test(req, 10000)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()
	return resp, payload
}

func decodeJSON(t *testing.T, payload []byte, target interface{}) {
	t.Helper()
	if err := json.Unmarshal(payload, target); err != nil {
		t.Fatalf("decode response %s: %v", payload, err)
	}
}

func (e *testEnv) createInterview(t *testing.T, userID, jobTitle string) models.Interview {
	t.Helper()

	resp, payload := e.request(t, http.MethodPost, "/api/interviews", models.CreateInterviewRequest{
		UserID:   userID,
		JobTitle: jobTitle,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create interview: status %d, body %s", resp.StatusCode, payload)
	}

	var interview models.Interview
	decodeJSON(t, payload, &interview)
	return interview
}
