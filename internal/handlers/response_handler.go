package handlers

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"prepview/interview-api/internal/models"
	"prepview/interview-api/internal/repositories"
	"prepview/interview-api/internal/services"
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

type ResponseHandler struct {
	responseRepo         repositories.ResponseRepository
	storageService       services.ObjectStorageService
	transcriptionService services.TranscriptionService
	responsesBucket      string
}

func NewResponseHandler(
	responseRepo repositories.ResponseRepository,
	storageService services.ObjectStorageService,
	transcriptionService services.TranscriptionService,
	responsesBucket string,
) *ResponseHandler {
	return &ResponseHandler{
		responseRepo:         responseRepo,
		storageService:       storageService,
		transcriptionService: transcriptionService,
		responsesBucket:      responsesBucket,
	}
}

// HandleCreate handles POST /responses. Audio files are transcribed inline
// before upload; a transcription failure is logged and the response is stored
// with an empty transcription.
func (h *ResponseHandler) HandleCreate(c *fiber.Ctx) error {
	file, err := c.FormFile("response")
	if err != nil || file == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no file received",
		})
	}

	questionID := c.FormValue("questionId")
	if !uuidPattern.MatchString(strings.ToLower(questionID)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid question ID",
		})
	}

	fileType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(fileType, "audio/") && !strings.HasPrefix(fileType, "video/") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "only audio and video files are accepted",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	transcription := ""
	if strings.HasPrefix(fileType, "audio/") {
		ctx, cancel := contextWithDeadline(c, 60*time.Second)
		text, err := h.transcriptionService.Transcribe(ctx, data, fileType)
		cancel()
		if err != nil {
			log.Warn().Err(err).Msg("Transcription failed, storing response without it")
		} else {
			transcription = text
		}
	}

	fileName := fmt.Sprintf("%s-%s", uuid.New().String(), file.Filename)

	publicURL, err := h.storageService.Upload(c.Context(), h.responsesBucket, fileName, data, fileType, true)
	if err != nil {
		return respondError(c, err)
	}

	response := &models.Response{
		ID:            uuid.New(),
		QuestionID:    questionID,
		FilePath:      publicURL,
		FileName:      fileName,
		FileType:      fileType,
		Transcription: transcription,
		CreatedAt:     time.Now(),
	}

	if err := h.responseRepo.Create(response); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// HandleListByQuestion handles GET /questions/:questionId/responses
func (h *ResponseHandler) HandleListByQuestion(c *fiber.Ctx) error {
	questionID := c.Params("questionId")
	if !uuidPattern.MatchString(strings.ToLower(questionID)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid question ID",
		})
	}

	responses, err := h.responseRepo.FindByQuestionID(questionID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(responses)
}

// HandleUpdateTranscription handles PUT /responses/:responseId/transcription
func (h *ResponseHandler) HandleUpdateTranscription(c *fiber.Ctx) error {
	responseID, err := uuid.Parse(c.Params("responseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid response ID",
		})
	}

	var req models.TranscriptionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}
	if strings.TrimSpace(req.Transcription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "transcription is required",
		})
	}

	if err := h.responseRepo.UpdateTranscription(responseID, req.Transcription); err != nil {
		return respondError(c, notFoundAs(err, services.ErrResponseNotFound))
	}

	response, err := h.responseRepo.FindByID(responseID)
	if err != nil {
		return respondError(c, notFoundAs(err, services.ErrResponseNotFound))
	}
	return c.JSON(response)
}
