package services

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"highscore-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// CoverStore keeps game cover images in a MinIO/S3 bucket. Clients upload
// straight to the bucket with a presigned URL and store the public URL as
// the game's image_url.
type CoverStore struct {
	client    *minio.Client
	bucket    string
	region    string
	publicURL string
	expiry    time.Duration
	logger    *logrus.Logger
}

type PresignedUpload struct {
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
	ObjectKey string `json:"object_key"`
}

func NewCoverStore(cfg *config.MinIOConfig, logger *logrus.Logger) (*CoverStore, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	return &CoverStore{
		client:    minioClient,
		bucket:    cfg.BucketName,
		region:    cfg.Region,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		expiry:    expiry,
		logger:    logger,
	}, nil
}

// EnsureBucket creates the bucket if needed and makes its objects publicly
// readable so image_url can be used directly by browsers.
func (s *CoverStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read")
	return nil
}

// PresignUpload returns a PUT URL for a new, uniquely named object derived
// from filename, plus the public URL the object will be served from.
func (s *CoverStore) PresignUpload(ctx context.Context, filename string) (*PresignedUpload, error) {
	objectKey := objectKeyFor(filename)

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectKey, s.expiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"filename":  filename,
		"objectKey": objectKey,
		"expiry":    s.expiry,
	}).Info("Generated presigned URL")

	return &PresignedUpload{
		UploadURL: presignedURL.String(),
		PublicURL: s.publicURL + "/" + objectKey,
		ObjectKey: objectKey,
	}, nil
}

// ObjectKey extracts the object key from a URL this store handed out. It
// reports false for images hosted anywhere else.
func (s *CoverStore) ObjectKey(imageURL string) (string, bool) {
	if s.publicURL == "" || !strings.HasPrefix(imageURL, s.publicURL+"/") {
		return "", false
	}

	key := strings.TrimPrefix(imageURL, s.publicURL+"/")
	if u, err := url.Parse(key); err == nil {
		key = u.Path
	}
	if key == "" || strings.Contains(key, "/") {
		return "", false
	}
	return key, true
}

// DeleteCover removes the object behind imageURL if the store owns it.
func (s *CoverStore) DeleteCover(ctx context.Context, imageURL string) error {
	objectKey, ok := s.ObjectKey(imageURL)
	if !ok {
		return nil
	}

	err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("objectKey", objectKey).Error("Failed to delete cover")
		return fmt.Errorf("failed to delete cover: %w", err)
	}

	s.logger.WithField("objectKey", objectKey).Info("Cover deleted successfully from MinIO")
	return nil
}

func objectKeyFor(filename string) string {
	base := path.Base(filepath.ToSlash(filename))
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if ext == "." {
		ext = ""
	}
	ext = strings.ToLower(ext)

	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	name = strings.Trim(name, "-")
	if name == "" {
		name = "cover"
	}

	return fmt.Sprintf("%s_%s%s", name, uuid.New().String()[:8], ext)
}
