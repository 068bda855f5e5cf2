package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"prepview/interview-api/internal/services"
)

// notFoundAs converts a repository miss into the matching service sentinel so
// respondError can answer 404 instead of 500.
func notFoundAs(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func mapAnswerLookupErr(err error) error {
	return notFoundAs(err, services.ErrVideoAnswerNotFound)
}

// respondError translates service-level failures into JSON error responses.
// Upstream failures (generation, document pipeline, storage) are logged with
// their cause but surfaced with a generic message.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   validationErr.Message,
			"details": "validation failed for " + validationErr.Field,
		})
	}

	if errors.Is(err, services.ErrInvalidMonitoringEvent) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	switch {
	case errors.Is(err, services.ErrInterviewNotFound),
		errors.Is(err, services.ErrVideoAnswerNotFound),
		errors.Is(err, services.ErrResponseNotFound),
		errors.Is(err, services.ErrVideoNotFound),
		errors.Is(err, services.ErrQuestionSetNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var parseErr *services.DocumentParseError
	if errors.As(err, &parseErr) {
		log.Error().Err(parseErr.Err).Msg("Document parsing failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read the uploaded document",
		})
	}

	var genErr *services.GenerationError
	if errors.As(err, &genErr) {
		log.Error().Err(genErr.Err).Msg("Question generation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "question generation failed",
		})
	}

	var storageErr *services.StorageError
	if errors.As(err, &storageErr) {
		log.Error().Err(storageErr.Err).Str("op", storageErr.Op).Msg("Storage operation failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "file storage failed",
		})
	}

	log.Error().Err(err).Msg("Unhandled service error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal server error",
		"details": err.Error(),
	})
}
