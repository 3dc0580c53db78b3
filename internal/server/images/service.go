package images

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/dmitrijs2005/miniblog/internal/common"
	sc "github.com/dmitrijs2005/miniblog/internal/server/config"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const maxFileSize = 10 * 1024 * 1024 // 10 MiB

const presignValidity = 15 * time.Minute

var allowedExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {},
}

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {}, "image/png": {}, "image/gif": {},
}

// Seams for tests; production code uses the real AWS SDK constructors.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Service implements the image upload/download use cases. Uploads go
// directly to the S3-compatible backend through presigned URLs; the service
// only validates the request, hands out the URL and records metadata once
// the client confirms the transfer.
type Service struct {
	repo   Repository
	config *sc.Config
}

func NewService(repo Repository, config *sc.Config) *Service {
	return &Service{
		repo:   repo,
		config: config,
	}
}

// UploadGrant is what a client needs to push one object to storage.
type UploadGrant struct {
	StorageKey string
	URL        string
}

// GetRandomStorageKey produces a date-partitioned object key.
func GetRandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("users/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func validateUpload(filename, contentType string, fileSize int64) error {
	ext := strings.ToLower(path.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return fmt.Errorf("%w: file extension %q is not allowed", common.ErrValidation, ext)
	}
	if _, ok := allowedContentTypes[contentType]; !ok {
		return fmt.Errorf("%w: content type %q is not allowed", common.ErrValidation, contentType)
	}
	if fileSize <= 0 || fileSize > maxFileSize {
		return fmt.Errorf("%w: file size must be between 1 byte and %d bytes", common.ErrValidation, maxFileSize)
	}
	return nil
}

func (s *Service) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// RequestUpload validates the declared file attributes and returns a
// presigned PUT grant for a fresh storage key. Nothing is recorded yet; the
// client calls Confirm after the transfer succeeds.
func (s *Service) RequestUpload(ctx context.Context, userID int64, filename, contentType string, fileSize int64) (*UploadGrant, error) {

	if err := validateUpload(filename, contentType, fileSize); err != nil {
		return nil, err
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	key := GetRandomStorageKey()

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: &contentType,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return nil, err
	}

	return &UploadGrant{StorageKey: key, URL: req.URL}, nil
}

// Confirm records metadata for an object the client finished uploading.
func (s *Service) Confirm(ctx context.Context, userID int64, filename, storageKey, contentType string, fileSize int64) (*Image, error) {

	if err := validateUpload(filename, contentType, fileSize); err != nil {
		return nil, err
	}

	image := &Image{
		Filename:    filename,
		StorageKey:  storageKey,
		ContentType: contentType,
		FileSize:    fileSize,
		UserID:      userID,
	}

	image, err := s.repo.Create(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("error creating image record: %w", err)
	}

	return image, nil
}

// GetURL returns a presigned GET URL for an image owned by the requester.
// Foreign and missing images are both reported as common.ErrNotFound.
func (s *Service) GetURL(ctx context.Context, userID, imageID int64) (string, error) {

	image, err := s.repo.GetByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("error searching image: %w", err)
	}

	if image.UserID != userID {
		return "", common.ErrNotFound
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &image.StorageKey,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// Delete removes the metadata record for an image owned by the requester.
// The stored object itself is left for out-of-band bucket cleanup. Foreign
// and missing images are both reported as common.ErrNotFound.
func (s *Service) Delete(ctx context.Context, userID, imageID int64) error {

	image, err := s.repo.GetByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("error searching image: %w", err)
	}

	if image.UserID != userID {
		return common.ErrNotFound
	}

	if _, err := s.repo.Delete(ctx, imageID); err != nil {
		return fmt.Errorf("error deleting image: %w", err)
	}

	return nil
}

// List returns the requester's image records, newest first.
func (s *Service) List(ctx context.Context, userID int64) ([]*Image, error) {
	result, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing images: %w", err)
	}
	return result, nil
}
