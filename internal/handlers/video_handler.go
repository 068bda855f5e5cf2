package handlers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"prepview/interview-api/internal/models"
	"prepview/interview-api/internal/repositories"
	"prepview/interview-api/internal/services"
)

type VideoHandler struct {
	videoRepo      repositories.VideoRepository
	storageService services.ObjectStorageService
	videosBucket   string
}

func NewVideoHandler(
	videoRepo repositories.VideoRepository,
	storageService services.ObjectStorageService,
	videosBucket string,
) *VideoHandler {
	return &VideoHandler{
		videoRepo:      videoRepo,
		storageService: storageService,
		videosBucket:   videosBucket,
	}
}

// HandleUpload handles POST /videos/upload. Uploads never overwrite an
// existing object with the same name.
func (h *VideoHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("video")
	if err != nil || file == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "no video file provided",
			"details": "a video file is required",
		})
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "video/") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "only video files are allowed",
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

	uniqueFileName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), file.Filename)

	publicURL, err := h.storageService.Upload(c.Context(), h.videosBucket, uniqueFileName, data, contentType, false)
	if err != nil {
		return respondError(c, err)
	}

	video := &models.Video{
		ID:        uuid.New(),
		URL:       publicURL,
		FileName:  uniqueFileName,
		Type:      "interview",
		CreatedAt: time.Now(),
	}
	if err := h.videoRepo.Create(video); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.VideoUploadResponse{
		Message:  "Video uploaded successfully",
		URL:      publicURL,
		FileName: uniqueFileName,
	})
}

// HandleList handles GET /videos
func (h *VideoHandler) HandleList(c *fiber.Ctx) error {
	videos, err := h.videoRepo.FindAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(videos)
}

// HandleListInterviewVideos handles GET /videos/interview
func (h *VideoHandler) HandleListInterviewVideos(c *fiber.Ctx) error {
	videos, err := h.videoRepo.FindByType("interview")
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(videos)
}

// HandleGet handles GET /videos/:id
func (h *VideoHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid video ID format",
		})
	}

	video, err := h.videoRepo.FindByID(id)
	if err != nil {
		return respondError(c, notFoundAs(err, services.ErrVideoNotFound))
	}
	return c.JSON(video)
}
