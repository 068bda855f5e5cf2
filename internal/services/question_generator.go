package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"prepview/interview-api/internal/models"
)

const (
	defaultTechnicalCount = 5
	defaultSoftSkillCount = 3
)

var validDifficulties = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
}

type QuestionGeneratorService interface {
	GenerateQuestions(ctx context.Context, req GenerateQuestionsRequest) (uuid.UUID, *models.GeneratedQuestionSet, error)
	GetGenerated(id uuid.UUID) (*models.GeneratedQuestionSet, error)
	GetLatest() (*models.GeneratedQuestionSet, error)
}

type GenerateQuestionsRequest struct {
	CVPath               string
	JobDescription       string
	TechnicalCount       int
	SoftSkillCount       int
	ProgrammingLanguages []string
}

type questionGeneratorService struct {
	geminiService GeminiService
	pdfParser     PDFParserService
	promptBuilder *PromptBuilder
	store         *QuestionStore
	maxRetries    int
}

func NewQuestionGeneratorService(
	geminiService GeminiService,
	pdfParser PDFParserService,
	store *QuestionStore,
	maxRetries int,
) QuestionGeneratorService {
	return &questionGeneratorService{
		geminiService: geminiService,
		pdfParser:     pdfParser,
		promptBuilder: NewPromptBuilder(),
		store:         store,
		maxRetries:    maxRetries,
	}
}

// GenerateQuestions extracts text from the CV, prompts the generation backend
// and validates the returned JSON against the question-set contract. On
// success the set is stored under a fresh handle; a malformed backend answer
// never produces a partially-parsed result.
func (s *questionGeneratorService) GenerateQuestions(ctx context.Context, req GenerateQuestionsRequest) (uuid.UUID, *models.GeneratedQuestionSet, error) {
	if strings.TrimSpace(req.JobDescription) == "" {
		return uuid.Nil, nil, NewValidationError("jobDescription", "job description is required")
	}
	if len(req.ProgrammingLanguages) == 0 {
		return uuid.Nil, nil, NewValidationError("programmingLanguages", "at least one programming language must be specified")
	}

	if req.TechnicalCount <= 0 {
		req.TechnicalCount = defaultTechnicalCount
	}
	if req.SoftSkillCount <= 0 {
		req.SoftSkillCount = defaultSoftSkillCount
	}

	cvText, err := s.pdfParser.ExtractText(req.CVPath)
	if err != nil {
		return uuid.Nil, nil, err
	}

	prompt := s.promptBuilder.BuildQuestionGenerationPrompt(
		CleanText(cvText),
		req.JobDescription,
		req.TechnicalCount,
		req.SoftSkillCount,
		req.ProgrammingLanguages,
	)

	log.Debug().Int("prompt_chars", len(prompt)).Msg("Sending generation request")

	response, err := s.geminiService.GenerateTextWithRetry(ctx, prompt, 0.7, s.maxRetries)
	if err != nil {
		return uuid.Nil, nil, &GenerationError{Err: err}
	}

	var set models.GeneratedQuestionSet
	if err := parseJSONResponse(response, &set); err != nil {
		return uuid.Nil, nil, &GenerationError{Err: err}
	}

	if err := validateQuestionSet(&set); err != nil {
		return uuid.Nil, nil, &GenerationError{Err: err}
	}

	id := s.store.Put(&set)
	log.Info().
		Str("generation_id", id.String()).
		Int("technical", len(set.TechnicalQuestions)).
		Int("soft_skill", len(set.SoftSkillQuestions)).
		Msg("Question set generated")

	return id, &set, nil
}

func (s *questionGeneratorService) GetGenerated(id uuid.UUID) (*models.GeneratedQuestionSet, error) {
	return s.store.Get(id)
}

func (s *questionGeneratorService) GetLatest() (*models.GeneratedQuestionSet, error) {
	return s.store.Latest()
}

func validateQuestionSet(set *models.GeneratedQuestionSet) error {
	if set.TechnicalQuestions == nil || set.SoftSkillQuestions == nil {
		return fmt.Errorf("response is missing technicalQuestions or softSkillQuestions")
	}

	for i, q := range set.TechnicalQuestions {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("technical question %d has empty question text", i+1)
		}
		if !validDifficulties[strings.ToLower(q.Difficulty)] {
			return fmt.Errorf("technical question %d has invalid difficulty %q", i+1, q.Difficulty)
		}
	}

	for i, q := range set.SoftSkillQuestions {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("soft skill question %d has empty question text", i+1)
		}
	}

	return nil
}

func parseJSONResponse(response string, target interface{}) error {
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown or
// other formatting around the object.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}
