package services

import (
	"context"
	"fmt"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
)

const transcriptionSampleRateHertz = 16000

type TranscriptionService interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// speechRecognizer is the slice of the Cloud Speech client the service uses.
type speechRecognizer interface {
	Recognize(ctx context.Context, req *speechpb.RecognizeRequest, opts ...gax.CallOption) (*speechpb.RecognizeResponse, error)
}

type transcriptionService struct {
	client       speechRecognizer
	languageCode string
}

func NewTranscriptionService(ctx context.Context, credentialsFile, languageCode string) (TranscriptionService, error) {
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}

	return &transcriptionService{
		client:       client,
		languageCode: languageCode,
	}, nil
}

// Transcribe submits one synchronous recognition request and joins the first
// alternative of every result with newlines. WebM audio carries Opus, anything
// else is assumed uncompressed PCM.
func (t *transcriptionService) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	encoding := speechpb.RecognitionConfig_LINEAR16
	if strings.Contains(mimeType, "webm") {
		encoding = speechpb.RecognitionConfig_WEBM_OPUS
	}

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   encoding,
			SampleRateHertz:            transcriptionSampleRateHertz,
			LanguageCode:               t.languageCode,
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	}

	resp, err := t.client.Recognize(ctx, req)
	if err != nil {
		return "", &TranscriptionError{Err: err}
	}

	var segments []string
	for _, result := range resp.GetResults() {
		alternatives := result.GetAlternatives()
		if len(alternatives) == 0 {
			continue
		}
		segments = append(segments, alternatives[0].GetTranscript())
	}

	return strings.Join(segments, "\n"), nil
}
