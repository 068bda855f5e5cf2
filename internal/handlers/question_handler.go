package handlers

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"prepview/interview-api/internal/models"
	"prepview/interview-api/internal/services"
)

type QuestionHandler struct {
	generatorService services.QuestionGeneratorService
	stagingService   services.FileStagingService
	maxFileSize      int64
}

func NewQuestionHandler(
	generatorService services.QuestionGeneratorService,
	stagingService services.FileStagingService,
	maxFileSize int64,
) *QuestionHandler {
	return &QuestionHandler{
		generatorService: generatorService,
		stagingService:   stagingService,
		maxFileSize:      maxFileSize,
	}
}

// HandleGenerate handles POST /generate-questions. The CV arrives as a
// multipart PDF; it is staged to disk for parsing and removed afterwards.
func (h *QuestionHandler) HandleGenerate(c *fiber.Ctx) error {
	cvFile, err := c.FormFile("cv")
	if err != nil || cvFile == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "CV file (PDF) is required",
		})
	}

	if cvFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "CV file too large",
		})
	}

	jobDescription := c.FormValue("jobDescription")
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Job description is required",
		})
	}

	languages := parseLanguages(c.FormValue("programmingLanguages"))
	if len(languages) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "At least one programming language must be specified",
		})
	}

	technicalCount, _ := strconv.Atoi(c.FormValue("technicalQuestionsCount"))
	softSkillCount, _ := strconv.Atoi(c.FormValue("softSkillQuestionsCount"))

	filename, filePath, err := h.stagingService.SaveFile(cvFile, "cv")
	if err != nil {
		return respondError(c, err)
	}
	defer func() {
		if err := h.stagingService.DeleteFile(filename); err != nil {
			log.Warn().Err(err).Str("filename", filename).Msg("Failed to clean up staged CV")
		}
	}()

	ctx, cancel := contextWithDeadline(c, 2*time.Minute)
	defer cancel()

	id, set, err := h.generatorService.GenerateQuestions(ctx, services.GenerateQuestionsRequest{
		CVPath:               filePath,
		JobDescription:       jobDescription,
		TechnicalCount:       technicalCount,
		SoftSkillCount:       softSkillCount,
		ProgrammingLanguages: languages,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.GenerateQuestionsResponse{
		ID:                 id.String(),
		TechnicalQuestions: set.TechnicalQuestions,
		SoftSkillQuestions: set.SoftSkillQuestions,
	})
}

// HandleGetQuestions handles GET /get-questions. Without an id parameter the
// most recently generated set is returned.
func (h *QuestionHandler) HandleGetQuestions(c *fiber.Ctx) error {
	if idParam := c.Query("id"); idParam != "" {
		id, err := uuid.Parse(idParam)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid generation ID format",
			})
		}

		set, err := h.generatorService.GetGenerated(id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(set)
	}

	set, err := h.generatorService.GetLatest()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(set)
}

// parseLanguages accepts either a JSON array ("[\"Go\",\"Python\"]") or a
// comma-separated list ("Go, Python").
func parseLanguages(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[") {
		var parsed []string
		if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
			return parsed
		}
		return nil
	}

	var languages []string
	for _, lang := range strings.Split(raw, ",") {
		lang = strings.TrimSpace(lang)
		if lang != "" {
			languages = append(languages, lang)
		}
	}
	return languages
}
