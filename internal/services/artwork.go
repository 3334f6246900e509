package services

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"movia-backend/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// ArtworkMirror copies a TMDB image into local object storage and returns
// the stored object key.
type ArtworkMirror interface {
	Mirror(ctx context.Context, objectKey, imagePath string) (string, error)
}

// MinIOArtworkMirror downloads images from the TMDB image CDN and stores
// them in an S3 compatible bucket.
type MinIOArtworkMirror struct {
	client       *minio.Client
	bucket       string
	imageBaseURL string
	httpClient   *http.Client
	logger       *logrus.Logger
}

func NewMinIOArtworkMirror(cfg config.ArtworkConfig, imageBaseURL string, logger *logrus.Logger) (*MinIOArtworkMirror, error) {
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
	}).Info("Artwork mirror initialized")

	mirror := &MinIOArtworkMirror{
		client:       minioClient,
		bucket:       cfg.BucketName,
		imageBaseURL: strings.TrimSuffix(imageBaseURL, "/"),
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		logger:       logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := mirror.ensureBucket(ctx, cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to prepare artwork bucket, but continuing...")
	}

	return mirror, nil
}

func (m *MinIOArtworkMirror) ensureBucket(ctx context.Context, region string) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if region == "" {
		region = "us-east-1"
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	m.logger.WithField("bucket", m.bucket).Info("Bucket created successfully")
	return nil
}

// Mirror fetches imagePath (for example "/abc.jpg") and stores it as
// objectKey plus the image's extension.
func (m *MinIOArtworkMirror) Mirror(ctx context.Context, objectKey, imagePath string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.imageBaseURL+imagePath, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image download returned status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := objectKey + path.Ext(imagePath)
	info, err := m.client.PutObject(ctx, m.bucket, key, resp.Body, resp.ContentLength, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		m.logger.WithError(err).WithField("objectKey", key).Error("Failed to store artwork")
		return "", fmt.Errorf("failed to store artwork: %w", err)
	}

	m.logger.WithFields(logrus.Fields{
		"objectKey": info.Key,
		"size":      info.Size,
	}).Debug("Artwork mirrored")

	return info.Key, nil
}
