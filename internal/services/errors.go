// Package services holds the business logic: the interview lifecycle, question
// generation, transcription, and the storage gateways. This file centralizes
// the service-level error values so callers can classify failures; translation
// into HTTP status codes happens at the handler layer.
package services

import (
	"errors"
	"fmt"
)

var (
	ErrInterviewNotFound      = errors.New("interview not found")
	ErrVideoAnswerNotFound    = errors.New("video answer not found")
	ErrResponseNotFound       = errors.New("response not found")
	ErrVideoNotFound          = errors.New("video not found")
	ErrQuestionSetNotFound    = errors.New("no questions have been generated yet")
	ErrInvalidMonitoringEvent = errors.New(`event type must be "copy_paste" or "camera_stopped"`)
)

// ValidationError reports malformed or missing caller input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// DocumentParseError reports a corrupt or unsupported uploaded document.
type DocumentParseError struct {
	Err error
}

func (e *DocumentParseError) Error() string {
	return fmt.Sprintf("failed to parse document: %v", e.Err)
}

func (e *DocumentParseError) Unwrap() error { return e.Err }

// GenerationError reports a generation backend failure, including output that
// does not match the expected JSON contract.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("question generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// TranscriptionError reports a speech backend failure. Callers treat it as
// non-fatal and proceed with an empty transcription.
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription failed: %v", e.Err)
}

func (e *TranscriptionError) Unwrap() error { return e.Err }

// StorageError reports an object storage failure. It is fatal to the
// containing request.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
