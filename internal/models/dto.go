package models

type CreateInterviewRequest struct {
	UserID        string `json:"user_id" form:"user_id" validate:"required"`
	JobTitle      string `json:"job_title" form:"job_title" validate:"required"`
	CompanyName   string `json:"company_name" form:"company_name"`
	InterviewDate string `json:"interview_date" form:"interview_date"`
}

type UpdateInterviewRequest struct {
	JobTitle           *string `json:"job_title"`
	CompanyName        *string `json:"company_name"`
	InterviewDate      *string `json:"interview_date"`
	Status             *string `json:"status"`
	CompletedQuestions *int    `json:"completed_questions"`
	TotalQuestions     *int    `json:"total_questions"`
}

type MonitoringEventRequest struct {
	EventType string `json:"event_type" validate:"required"`
}

type TranscriptionUpdateRequest struct {
	Transcription string `json:"transcription" validate:"required"`
}

type CreateVideoAnswerRequest struct {
	InterviewID   string `json:"interview_id" form:"interview_id" validate:"required,uuid"`
	QuestionID    string `json:"question_id" form:"question_id"`
	QuestionIndex int    `json:"question_index" form:"question_index"`
	QuestionType  string `json:"question_type" form:"question_type"`
	QuestionText  string `json:"question_text" form:"question_text"`
	URL           string `json:"url" form:"url"`
	Transcription string `json:"transcription" form:"transcription"`
}

type GenerateQuestionsResponse struct {
	ID                 string              `json:"id"`
	TechnicalQuestions []TechnicalQuestion `json:"technicalQuestions"`
	SoftSkillQuestions []SoftSkillQuestion `json:"softSkillQuestions"`
}

type VideoUploadResponse struct {
	Message  string `json:"message"`
	URL      string `json:"url"`
	FileName string `json:"fileName"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}
