package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"prepview/interview-api/internal/models"
	"prepview/interview-api/internal/services"
)

var validate = validator.New()

type InterviewHandler struct {
	interviewService services.InterviewService
}

func NewInterviewHandler(interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
	}
}

// HandleCreate handles POST /interviews
func (h *InterviewHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateInterviewRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Missing required fields",
			"details": "user_id and job_title are required",
		})
	}

	interview, err := h.interviewService.CreateInterview(req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(interview)
}

// HandleList handles GET /interviews
func (h *InterviewHandler) HandleList(c *fiber.Ctx) error {
	interviews, err := h.interviewService.ListInterviews()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(interviews)
}

// HandleGet handles GET /interviews/:id
func (h *InterviewHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid interview ID format",
		})
	}

	interview, err := h.interviewService.GetInterview(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(interview)
}

// HandleListByOwner handles GET /interviews/owner/:ownerId
func (h *InterviewHandler) HandleListByOwner(c *fiber.Ctx) error {
	interviews, err := h.interviewService.ListInterviewsByOwner(c.Params("ownerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(interviews)
}

// HandleUpdate handles PUT /interviews/:id
func (h *InterviewHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid interview ID format",
		})
	}

	var req models.UpdateInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	interview, err := h.interviewService.UpdateInterview(id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(interview)
}

// HandleDelete handles DELETE /interviews/:id
func (h *InterviewHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid interview ID format",
		})
	}

	if err := h.interviewService.DeleteInterview(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.DeleteResponse{Message: "Interview deleted successfully"})
}

// HandleMonitoring handles PUT /interviews/:id/monitoring
func (h *InterviewHandler) HandleMonitoring(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid interview ID format",
		})
	}

	return h.applyMonitoringEvent(c, id)
}

// HandleMonitoringLatest handles PUT /interviews/last/monitoring
func (h *InterviewHandler) HandleMonitoringLatest(c *fiber.Ctx) error {
	latest, err := h.interviewService.LatestInterview()
	if err != nil {
		return respondError(c, err)
	}

	return h.applyMonitoringEvent(c, latest.ID)
}

func (h *InterviewHandler) applyMonitoringEvent(c *fiber.Ctx, id uuid.UUID) error {
	var req models.MonitoringEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	interview, err := h.interviewService.SetMonitoringFlag(id, req.EventType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(interview)
}

// HandleListAnswers handles GET /interviews/:id/video-answers
func (h *InterviewHandler) HandleListAnswers(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid interview ID format",
		})
	}

	answers, err := h.interviewService.ListVideoAnswers(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(answers)
}

// HandleListLatestAnswers handles GET /interviews/last/video-answers
func (h *InterviewHandler) HandleListLatestAnswers(c *fiber.Ctx) error {
	answers, err := h.interviewService.LatestInterviewAnswers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(answers)
}
