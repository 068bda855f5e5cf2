package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"prepview/interview-api/internal/models"
	"prepview/interview-api/internal/services"
)

type VideoAnswerHandler struct {
	interviewService services.InterviewService
	answerRepo       AnswerLister
	storageService   services.ObjectStorageService
	videosBucket     string
}

// AnswerLister is the read-side slice of the video answer repository the
// handler needs for the global listing endpoints.
type AnswerLister interface {
	FindAll() ([]models.VideoAnswer, error)
	FindByID(id uuid.UUID) (*models.VideoAnswer, error)
}

func NewVideoAnswerHandler(
	interviewService services.InterviewService,
	answerRepo AnswerLister,
	storageService services.ObjectStorageService,
	videosBucket string,
) *VideoAnswerHandler {
	return &VideoAnswerHandler{
		interviewService: interviewService,
		answerRepo:       answerRepo,
		storageService:   storageService,
		videosBucket:     videosBucket,
	}
}

// HandleCreate handles POST /video-answers. The recording may arrive either as
// an already-uploaded URL in the form body or as an attached "video" file,
// which is uploaded to the videos bucket first.
func (h *VideoAnswerHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateVideoAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if file, err := c.FormFile("video"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "failed to read uploaded video",
			})
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "failed to read uploaded video",
			})
		}

		key := fmt.Sprintf("%s-%s", uuid.New().String(), file.Filename)
		contentType := file.Header.Get("Content-Type")

		url, err := h.storageService.Upload(c.Context(), h.videosBucket, key, data, contentType, false)
		if err != nil {
			return respondError(c, err)
		}
		req.URL = url
	}

	answer, err := h.interviewService.RecordVideoAnswer(req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(answer)
}

// HandleList handles GET /video-answers
func (h *VideoAnswerHandler) HandleList(c *fiber.Ctx) error {
	answers, err := h.answerRepo.FindAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(answers)
}

// HandleGet handles GET /video-answers/:id
func (h *VideoAnswerHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid video answer ID format",
		})
	}

	answer, err := h.answerRepo.FindByID(id)
	if err != nil {
		return respondError(c, mapAnswerLookupErr(err))
	}
	return c.JSON(answer)
}

// HandleUpdateTranscription handles PUT /video-answers/:id/transcription
func (h *VideoAnswerHandler) HandleUpdateTranscription(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid video answer ID format",
		})
	}

	var req models.TranscriptionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	answer, err := h.interviewService.UpdateVideoAnswerTranscription(id, req.Transcription)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(answer)
}
