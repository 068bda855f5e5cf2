package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildQuestionGenerationPrompt creates the prompt for interview question
// generation. The backend is instructed to answer with pure JSON only; the
// parsing side depends on this exact shape.
func (pb *PromptBuilder) BuildQuestionGenerationPrompt(cvText, jobDescription string, technicalCount, softSkillCount int, programmingLanguages []string) string {
	return fmt.Sprintf(`You are an expert technical interviewer specializing in multiple programming languages. You must respond only with valid JSON, no additional text or explanations. For each question, provide a detailed model answer that would be expected from an ideal candidate.

Based on the following CV and job description, generate interview questions with their answers.

Generate %d technical questions specifically focused on the following programming languages: %s.
Also generate %d soft skill questions.

CV Content:
%s

Job Description:
%s

Return the response in the following JSON format (no additional text, just pure JSON):
{
  "technicalQuestions": [
    {
      "id": "1",
      "question": "the question text",
      "answer": "detailed model answer that an ideal candidate might give",
      "programmingLanguage": "the specific programming language this question is about",
      "difficulty": "easy|medium|hard"
    }
  ],
  "softSkillQuestions": [
    {
      "id": "1",
      "question": "the question text",
      "answer": "detailed model answer that an ideal candidate might give",
      "category": "leadership|teamwork|communication|problem-solving|etc"
    }
  ]
}

Increment the "id" field for each question (1, 2, 3, etc.). Focus technical questions specifically on the requested programming languages.`,
		technicalCount, strings.Join(programmingLanguages, ", "), softSkillCount, cvText, jobDescription)
}
