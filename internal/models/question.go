package models

// TechnicalQuestion and SoftSkillQuestion mirror the JSON contract the
// generation backend is instructed to return. IDs are sequential strings
// starting at "1".
type TechnicalQuestion struct {
	ID                  string `json:"id"`
	Question            string `json:"question"`
	Answer              string `json:"answer"`
	ProgrammingLanguage string `json:"programmingLanguage"`
	Difficulty          string `json:"difficulty"`
}

type SoftSkillQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// GeneratedQuestionSet is never persisted to the relational store. It lives in
// the in-process question store until the process restarts.
type GeneratedQuestionSet struct {
	TechnicalQuestions []TechnicalQuestion `json:"technicalQuestions"`
	SoftSkillQuestions []SoftSkillQuestion `json:"softSkillQuestions"`
}
