package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// MaterialUpload is the pair of URLs the console needs to attach a resource
// to a lesson: PUT the file to UploadURL, then call the lesson material
// update with ResourceURL.
type MaterialUpload struct {
	UploadURL   string
	ResourceURL string
	ObjectKey   string
}

// MaterialService handles lesson resource files in object storage.
type MaterialService interface {
	// InitiateUpload returns a presigned PUT URL for a lesson resource and
	// the stable resource URL to store on the lesson afterwards.
	InitiateUpload(ctx context.Context, lessonID, filename string) (*MaterialUpload, error)
	// GetViewURL returns a short-lived presigned GET URL for an object key.
	GetViewURL(ctx context.Context, objectKey string) (string, error)
}

type materialService struct {
	s3Client      *s3.Client
	presignClient *s3.PresignClient
	bucketName    string
	baseURL       string
	logger        zerolog.Logger
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(s3Client *s3.Client, bucketName, baseURL string, logger zerolog.Logger) MaterialService {
	return &materialService{
		s3Client:      s3Client,
		presignClient: s3.NewPresignClient(s3Client),
		bucketName:    bucketName,
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		logger:        logger.With().Str("service", "MaterialService").Logger(),
	}
}

// InitiateUpload generates a presigned PUT URL for a lesson resource
func (s *materialService) InitiateUpload(ctx context.Context, lessonID, filename string) (*MaterialUpload, error) {
	objectKey := fmt.Sprintf("materials/%s/%s", lessonID, path.Base(filename))
	request, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		s.logger.Error().Err(err).Str("object_key", objectKey).Msg("Failed to generate presigned PUT URL")
		return nil, fmt.Errorf("failed to generate presigned PUT URL: %w", err)
	}
	return &MaterialUpload{
		UploadURL:   request.URL,
		ResourceURL: fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucketName, objectKey),
		ObjectKey:   objectKey,
	}, nil
}

// GetViewURL generates a signed URL for the given object key
func (s *materialService) GetViewURL(ctx context.Context, objectKey string) (string, error) {
	resp, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		s.logger.Error().Err(err).Str("object_key", objectKey).Msg("Failed to generate presigned URL")
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return resp.URL, nil
}
