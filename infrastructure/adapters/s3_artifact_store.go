package adapters

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/ccmarin14/TTS-Service/application/ports/outbound"
	"github.com/ccmarin14/TTS-Service/config"
	"github.com/ccmarin14/TTS-Service/domain"
	"github.com/rs/zerolog/log"
)

type s3ArtifactStore struct {
	s3Svc s3iface.S3API
	cfg   *config.S3Config
}

func NewS3ArtifactStore(s3Svc s3iface.S3API, cfg *config.S3Config) outbound.ArtifactStorePort {
	return &s3ArtifactStore{
		s3Svc: s3Svc,
		cfg:   cfg,
	}
}

// Upload puts the scratch file at audios/{objectKey}.mp3 and returns the
// object's public URL. The caller owns the scratch file's lifetime.
func (s *s3ArtifactStore) Upload(ctx context.Context, localPath string, objectKey string) (string, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return "", &domain.StorageError{Op: "open scratch file", Err: err}
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", &domain.StorageError{Op: "stat scratch file", Err: err}
	}

	itemPath := fmt.Sprintf("audios/%s.mp3", objectKey)

	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.BucketName),
		Key:           aws.String(itemPath),
		Body:          file,
		ContentLength: aws.Int64(info.Size()),
		ContentType:   aws.String("audio/mpeg"),
	}

	if _, err := s.s3Svc.PutObjectWithContext(ctx, putInput); err != nil {
		log.Error().
			Err(err).
			Str("bucket", s.cfg.BucketName).
			Str("key", itemPath).
			Msg("Failed to upload object to S3")
		return "", &domain.StorageError{Op: "upload to S3", Err: err}
	}

	url := s.objectURL(itemPath)
	log.Debug().
		Str("url", url).
		Msg("Successfully uploaded object to S3")

	return url, nil
}

func (s *s3ArtifactStore) objectURL(itemPath string) string {
	if s.cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.cfg.Endpoint, s.cfg.BucketName, itemPath)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.BucketName, s.cfg.Region, itemPath)
}
