package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"prepview/interview-api/internal/config"
)

type ObjectStorageService interface {
	// Upload stores the buffer under bucket/key and returns a public URL.
	// With overwrite disabled an existing object under the same key is a
	// collision and the upload is rejected.
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string, overwrite bool) (string, error)
}

// s3API is the slice of the S3 client the gateway uses.
type s3API interface {
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
	HeadObjectWithContext(ctx aws.Context, input *s3.HeadObjectInput, opts ...request.Option) (*s3.HeadObjectOutput, error)
}

type objectStorageService struct {
	client        s3API
	publicBaseURL string
}

func NewObjectStorageService(cfg config.StorageConfig) (ObjectStorageService, error) {
	s3Config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Endpoint:         aws.String(cfg.Endpoint),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}

	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage session: %w", err)
	}

	publicBaseURL := cfg.PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = cfg.Endpoint
	}

	return &objectStorageService{
		client:        s3.New(sess),
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

func (s *objectStorageService) Upload(ctx context.Context, bucket, key string, data []byte, contentType string, overwrite bool) (string, error) {
	if !overwrite {
		exists, err := s.exists(ctx, bucket, key)
		if err != nil {
			return "", &StorageError{Op: "head", Err: err}
		}
		if exists {
			return "", &StorageError{Op: "upload", Err: fmt.Errorf("object %q already exists in bucket %q", key, bucket)}
		}
	}

	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", &StorageError{Op: "upload", Err: err}
	}

	return s.PublicURL(bucket, key), nil
}

func (s *objectStorageService) PublicURL(bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, bucket, key)
}

func (s *objectStorageService) exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := s.client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			switch aerr.Code() {
			case s3.ErrCodeNoSuchKey, "NotFound":
				return false, nil
			}
		}
		return false, err
	}
	return true, nil
}
