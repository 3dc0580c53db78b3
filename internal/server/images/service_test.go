package images

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/miniblog/internal/common"
	sc "github.com/dmitrijs2005/miniblog/internal/server/config"
)

// ---- fakes ----

type fakeRepo struct {
	createOut *Image
	createErr error

	byIDOut *Image
	byIDErr error

	listOut []*Image
	listErr error

	createCalls int
	deleteCalls int
}

func (f *fakeRepo) Create(ctx context.Context, img *Image) (*Image, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	created := *img
	created.ID = 5
	created.UploadedAt = time.Now()
	return &created, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*Image, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

func (f *fakeRepo) ListByUser(ctx context.Context, userID int64) ([]*Image, error) {
	return f.listOut, f.listErr
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	f.deleteCalls++
	return true, nil
}

// ---- helpers ----

func newTestService(repo Repository) *Service {
	cfg := &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "images",
	}
	return NewService(repo, cfg)
}

// stubPresign replaces the AWS seams so no network or credentials are
// touched; restoration is registered on t.Cleanup.
func stubPresign(t *testing.T, putURL, getURL string) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := presignPutObject
	origGet := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return &s3.PresignClient{}
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: putURL + "/" + *in.Key}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: getURL + "/" + *in.Key}, nil
	}
}

// ---- validation ----

func TestRequestUpload_Validation(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		size        int64
	}{
		{"bad extension", "avatar.exe", "image/png", 100},
		{"no extension", "avatar", "image/png", 100},
		{"bad content type", "avatar.png", "application/octet-stream", 100},
		{"zero size", "avatar.png", "image/png", 0},
		{"too large", "avatar.png", "image/png", maxFileSize + 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			s := newTestService(repo)

			_, err := s.RequestUpload(context.Background(), 1, tc.filename, tc.contentType, tc.size)
			if !errors.Is(err, common.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestRequestUpload_Success(t *testing.T) {
	stubPresign(t, "http://presigned-put", "http://presigned-get")

	s := newTestService(&fakeRepo{})

	grant, err := s.RequestUpload(context.Background(), 1, "avatar.png", "image/png", 1024)
	if err != nil {
		t.Fatalf("RequestUpload error: %v", err)
	}
	if grant.StorageKey == "" {
		t.Fatalf("expected a storage key")
	}
	if !strings.HasPrefix(grant.StorageKey, "users/") {
		t.Fatalf("unexpected key layout: %q", grant.StorageKey)
	}
	if !strings.HasPrefix(grant.URL, "http://presigned-put/") {
		t.Fatalf("unexpected URL: %q", grant.URL)
	}
}

func TestConfirm_RecordsMetadata(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(repo)

	img, err := s.Confirm(context.Background(), 1, "avatar.png", "users/2026/1/2/key", "image/png", 1024)
	if err != nil {
		t.Fatalf("Confirm error: %v", err)
	}
	if img.ID == 0 || img.UserID != 1 || img.StorageKey != "users/2026/1/2/key" {
		t.Fatalf("unexpected image: %+v", img)
	}
	if repo.createCalls != 1 {
		t.Fatalf("expected one create, got %d", repo.createCalls)
	}
}

func TestGetURL_OwnershipAndAbsence(t *testing.T) {
	stubPresign(t, "http://presigned-put", "http://presigned-get")

	owned := &Image{ID: 5, UserID: 1, StorageKey: "users/2026/1/2/key"}

	t.Run("owned image", func(t *testing.T) {
		s := newTestService(&fakeRepo{byIDOut: owned})
		url, err := s.GetURL(context.Background(), 1, 5)
		if err != nil {
			t.Fatalf("GetURL error: %v", err)
		}
		if url != "http://presigned-get/users/2026/1/2/key" {
			t.Fatalf("unexpected url: %q", url)
		}
	})

	t.Run("foreign image looks missing", func(t *testing.T) {
		s := newTestService(&fakeRepo{byIDOut: owned})
		_, err := s.GetURL(context.Background(), 2, 5)
		if !errors.Is(err, common.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("missing image", func(t *testing.T) {
		s := newTestService(&fakeRepo{byIDErr: common.ErrNotFound})
		_, err := s.GetURL(context.Background(), 1, 99)
		if !errors.Is(err, common.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestDelete_OwnershipAndAbsence(t *testing.T) {
	owned := &Image{ID: 5, UserID: 1, StorageKey: "users/2026/1/2/key"}

	t.Run("owned image", func(t *testing.T) {
		repo := &fakeRepo{byIDOut: owned}
		s := newTestService(repo)
		if err := s.Delete(context.Background(), 1, 5); err != nil {
			t.Fatalf("Delete error: %v", err)
		}
		if repo.deleteCalls != 1 {
			t.Fatalf("expected exactly one delete, got %d", repo.deleteCalls)
		}
	})

	t.Run("foreign image looks missing", func(t *testing.T) {
		repo := &fakeRepo{byIDOut: owned}
		s := newTestService(repo)
		err := s.Delete(context.Background(), 2, 5)
		if !errors.Is(err, common.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if repo.deleteCalls != 0 {
			t.Fatalf("ownership failure must not touch the repository")
		}
	})

	t.Run("missing image", func(t *testing.T) {
		repo := &fakeRepo{byIDErr: common.ErrNotFound}
		s := newTestService(repo)
		err := s.Delete(context.Background(), 1, 99)
		if !errors.Is(err, common.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestGetRandomStorageKey_Unique(t *testing.T) {
	if GetRandomStorageKey() == GetRandomStorageKey() {
		t.Fatalf("storage keys must be unique")
	}
}
