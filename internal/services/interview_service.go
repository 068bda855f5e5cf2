package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"prepview/interview-api/internal/models"
	"prepview/interview-api/internal/repositories"
)

type InterviewService interface {
	CreateInterview(req models.CreateInterviewRequest) (*models.Interview, error)
	ListInterviews() ([]models.Interview, error)
	GetInterview(id uuid.UUID) (*models.Interview, error)
	ListInterviewsByOwner(userID string) ([]models.Interview, error)
	LatestInterview() (*models.Interview, error)
	UpdateInterview(id uuid.UUID, req models.UpdateInterviewRequest) (*models.Interview, error)
	DeleteInterview(id uuid.UUID) error
	RecordVideoAnswer(req models.CreateVideoAnswerRequest) (*models.VideoAnswer, error)
	ListVideoAnswers(interviewID uuid.UUID) ([]models.VideoAnswer, error)
	LatestInterviewAnswers() ([]models.VideoAnswer, error)
	SetMonitoringFlag(id uuid.UUID, eventType string) (*models.Interview, error)
	UpdateVideoAnswerTranscription(id uuid.UUID, transcription string) (*models.VideoAnswer, error)
}

type interviewService struct {
	interviewRepo repositories.InterviewRepository
	answerRepo    repositories.VideoAnswerRepository
}

func NewInterviewService(
	interviewRepo repositories.InterviewRepository,
	answerRepo repositories.VideoAnswerRepository,
) InterviewService {
	return &interviewService{
		interviewRepo: interviewRepo,
		answerRepo:    answerRepo,
	}
}

func (s *interviewService) CreateInterview(req models.CreateInterviewRequest) (*models.Interview, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, NewValidationError("user_id", "user_id is required")
	}
	if strings.TrimSpace(req.JobTitle) == "" {
		return nil, NewValidationError("job_title", "job_title is required")
	}

	var interviewDate *time.Time
	if req.InterviewDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.InterviewDate)
		if err != nil {
			return nil, NewValidationError("interview_date", "date must be in ISO format (e.g. 2024-03-20T10:00:00Z)")
		}
		interviewDate = &parsed
	}

	var companyName *string
	if req.CompanyName != "" {
		companyName = &req.CompanyName
	}

	interview := &models.Interview{
		ID:            uuid.New(),
		UserID:        req.UserID,
		JobTitle:      req.JobTitle,
		CompanyName:   companyName,
		InterviewDate: interviewDate,
		Status:        models.StatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := s.interviewRepo.Create(interview); err != nil {
		return nil, err
	}

	return interview, nil
}

func (s *interviewService) ListInterviews() ([]models.Interview, error) {
	return s.interviewRepo.FindAll()
}

func (s *interviewService) GetInterview(id uuid.UUID) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindByID(id)
	if err != nil {
		return nil, mapNotFound(err, ErrInterviewNotFound)
	}
	return interview, nil
}

func (s *interviewService) ListInterviewsByOwner(userID string) ([]models.Interview, error) {
	return s.interviewRepo.FindByUserID(userID)
}

func (s *interviewService) LatestInterview() (*models.Interview, error) {
	interview, err := s.interviewRepo.FindLatest()
	if err != nil {
		return nil, mapNotFound(err, ErrInterviewNotFound)
	}
	return interview, nil
}

func (s *interviewService) UpdateInterview(id uuid.UUID, req models.UpdateInterviewRequest) (*models.Interview, error) {
	updates := map[string]interface{}{}

	if req.JobTitle != nil {
		updates["job_title"] = *req.JobTitle
	}
	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}
	if req.InterviewDate != nil {
		parsed, err := time.Parse(time.RFC3339, *req.InterviewDate)
		if err != nil {
			return nil, NewValidationError("interview_date", "date must be in ISO format (e.g. 2024-03-20T10:00:00Z)")
		}
		updates["interview_date"] = parsed
	}
	if req.Status != nil {
		status := models.InterviewStatus(*req.Status)
		if !status.Valid() {
			return nil, NewValidationError("status", "status must be one of pending, in_progress, completed, cancelled")
		}
		updates["status"] = status
	}
	if req.CompletedQuestions != nil {
		updates["completed_questions"] = *req.CompletedQuestions
	}
	if req.TotalQuestions != nil {
		updates["total_questions"] = *req.TotalQuestions
	}

	if len(updates) == 0 {
		return nil, NewValidationError("body", "no fields to update")
	}

	if err := s.interviewRepo.Update(id, updates); err != nil {
		return nil, mapNotFound(err, ErrInterviewNotFound)
	}

	return s.GetInterview(id)
}

func (s *interviewService) DeleteInterview(id uuid.UUID) error {
	if err := s.interviewRepo.Delete(id); err != nil {
		return mapNotFound(err, ErrInterviewNotFound)
	}
	return nil
}

// RecordVideoAnswer inserts the answer and then bumps the parent interview's
// completed-question count. The insert is the primary effect: an increment
// failure is logged and the answer is still returned as created.
func (s *interviewService) RecordVideoAnswer(req models.CreateVideoAnswerRequest) (*models.VideoAnswer, error) {
	interviewID, err := uuid.Parse(req.InterviewID)
	if err != nil {
		return nil, NewValidationError("interview_id", "interview_id must be a valid UUID")
	}
	if strings.TrimSpace(req.URL) == "" {
		return nil, NewValidationError("url", "url is required")
	}

	if _, err := s.interviewRepo.FindByID(interviewID); err != nil {
		return nil, mapNotFound(err, ErrInterviewNotFound)
	}

	answer := &models.VideoAnswer{
		ID:            uuid.New(),
		InterviewID:   interviewID,
		QuestionID:    req.QuestionID,
		QuestionIndex: req.QuestionIndex,
		QuestionType:  req.QuestionType,
		QuestionText:  req.QuestionText,
		URL:           req.URL,
		CreatedAt:     time.Now(),
	}
	if req.Transcription != "" {
		answer.Transcription = &req.Transcription
	}

	if err := s.answerRepo.Create(answer); err != nil {
		return nil, err
	}

	if err := s.interviewRepo.IncrementCompleted(interviewID); err != nil {
		log.Warn().
			Err(err).
			Str("interview_id", interviewID.String()).
			Msg("Failed to increment completed questions")
	}

	return answer, nil
}

func (s *interviewService) ListVideoAnswers(interviewID uuid.UUID) ([]models.VideoAnswer, error) {
	if _, err := s.interviewRepo.FindByID(interviewID); err != nil {
		return nil, mapNotFound(err, ErrInterviewNotFound)
	}
	return s.answerRepo.FindByInterviewID(interviewID)
}

func (s *interviewService) LatestInterviewAnswers() ([]models.VideoAnswer, error) {
	interview, err := s.interviewRepo.FindLatest()
	if err != nil {
		return nil, mapNotFound(err, ErrInterviewNotFound)
	}
	return s.answerRepo.FindByInterviewID(interview.ID)
}

func (s *interviewService) SetMonitoringFlag(id uuid.UUID, eventType string) (*models.Interview, error) {
	var column string
	switch eventType {
	case models.EventCopyPaste:
		column = "has_attempted_copy_paste"
	case models.EventCameraStopped:
		column = "has_stopped_camera"
	default:
		return nil, ErrInvalidMonitoringEvent
	}

	if err := s.interviewRepo.SetMonitoringFlag(id, column); err != nil {
		return nil, mapNotFound(err, ErrInterviewNotFound)
	}

	return s.GetInterview(id)
}

func (s *interviewService) UpdateVideoAnswerTranscription(id uuid.UUID, transcription string) (*models.VideoAnswer, error) {
	if strings.TrimSpace(transcription) == "" {
		return nil, NewValidationError("transcription", "transcription is required")
	}

	if err := s.answerRepo.UpdateTranscription(id, transcription); err != nil {
		return nil, mapNotFound(err, ErrVideoAnswerNotFound)
	}

	answer, err := s.answerRepo.FindByID(id)
	if err != nil {
		return nil, mapNotFound(err, ErrVideoAnswerNotFound)
	}
	return answer, nil
}

func mapNotFound(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
