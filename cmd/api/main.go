package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"prepview/interview-api/internal/config"
	"prepview/interview-api/internal/handlers"
	"prepview/interview-api/internal/logger"
	"prepview/interview-api/internal/repositories"
	"prepview/interview-api/internal/services"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	log.Info().Msg("Config loaded")

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}

	// Repositories
	interviewRepo := repositories.NewInterviewRepository(db)
	answerRepo := repositories.NewVideoAnswerRepository(db)
	responseRepo := repositories.NewResponseRepository(db)
	videoRepo := repositories.NewVideoRepository(db)
	log.Info().Msg("Repositories initialized")

	// Services
	stagingService := services.NewFileStagingService(cfg.Upload.StagingPath)
	if err := stagingService.EnsureUploadDir(); err != nil {
		log.Fatal().Err(err).Msg("Failed to create upload directory")
	}

	pdfParser := services.NewPDFParserService()

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Gemini")
	}

	ctx := context.Background()
	transcriptionService, err := services.NewTranscriptionService(ctx, cfg.Speech.CredentialsFile, cfg.Speech.LanguageCode)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize speech client")
	}

	storageService, err := services.NewObjectStorageService(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize object storage")
	}

	questionStore := services.NewQuestionStore()
	generatorService := services.NewQuestionGeneratorService(
		geminiService,
		pdfParser,
		questionStore,
		cfg.Gemini.RetryMaxAttempts,
	)

	interviewService := services.NewInterviewService(interviewRepo, answerRepo)
	log.Info().Msg("Services initialized")

	// Handlers
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	answerHandler := handlers.NewVideoAnswerHandler(interviewService, answerRepo, storageService, cfg.Storage.VideosBucket)
	responseHandler := handlers.NewResponseHandler(responseRepo, storageService, transcriptionService, cfg.Storage.ResponsesBucket)
	videoHandler := handlers.NewVideoHandler(videoRepo, storageService, cfg.Storage.VideosBucket)
	questionHandler := handlers.NewQuestionHandler(generatorService, stagingService, cfg.Upload.MaxFileSize)
	log.Info().Msg("Handlers initialized")

	app := fiber.New(fiber.Config{
		AppName:      "AI Interview API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	registerRoutes(app, interviewHandler, answerHandler, responseHandler, videoHandler, questionHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("Shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("Server starting")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func registerRoutes(
	app *fiber.App,
	interviewHandler *handlers.InterviewHandler,
	answerHandler *handlers.VideoAnswerHandler,
	responseHandler *handlers.ResponseHandler,
	videoHandler *handlers.VideoHandler,
	questionHandler *handlers.QuestionHandler,
) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Interviews. The "last" routes must be registered before the ":id" ones.
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

	// Video answers
	api.Post("/video-answers", answerHandler.HandleCreate)
	api.Get("/video-answers", answerHandler.HandleList)
	api.Get("/video-answers/:id", answerHandler.HandleGet)
	api.Put("/video-answers/:id/transcription", answerHandler.HandleUpdateTranscription)

	// Responses
	api.Post("/responses", responseHandler.HandleCreate)
	api.Get("/questions/:questionId/responses", responseHandler.HandleListByQuestion)
	api.Put("/responses/:responseId/transcription", responseHandler.HandleUpdateTranscription)

	// Videos
	api.Post("/videos/upload", videoHandler.HandleUpload)
	api.Get("/videos", videoHandler.HandleList)
	api.Get("/videos/interview", videoHandler.HandleListInterviewVideos)
	api.Get("/videos/:id", videoHandler.HandleGet)

	// Question generation
	api.Post("/generate-questions", questionHandler.HandleGenerate)
	api.Get("/get-questions", questionHandler.HandleGetQuestions)
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
