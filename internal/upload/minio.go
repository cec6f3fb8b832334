package upload

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/pkordes/rec-registration/internal/domain"
)

// MinioConfig holds the connection settings for an S3-compatible bucket.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
}

// MinioStore keeps uploaded images as objects in a single bucket.
type MinioStore struct {
	client *minio.Client
	bucket string
}

// NewMinioStore connects to the configured endpoint and checks that the
// bucket exists.
func NewMinioStore(ctx context.Context, cfg MinioConfig) (*MinioStore, error) {
	endpoint, secure, err := NormaliseEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("upload.NewMinioStore: %w", err)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("upload.NewMinioStore: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("upload.NewMinioStore: bucket check: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("upload.NewMinioStore: bucket %q does not exist", cfg.Bucket)
	}

	return &MinioStore{client: client, bucket: cfg.Bucket}, nil
}

// NormaliseEndpoint accepts "host:port" or "http(s)://host:port" and returns
// the bare host plus whether TLS should be used. A bare host is insecure.
func NormaliseEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, fmt.Errorf("empty endpoint")
	}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, fmt.Errorf("invalid endpoint %q", raw)
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, fmt.Errorf("endpoint must not contain a path")
		}
		return u.Host, u.Scheme == "https", nil
	}

	return raw, false, nil
}

// Save streams r into a new object called name. A size of -1 lets the
// client upload in parts.
func (s *MinioStore) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	if err := checkName(name); err != nil {
		return fmt.Errorf("upload.MinioStore.Save: %w", err)
	}

	_, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload.MinioStore.Save: %w", err)
	}
	return nil
}

// Open returns the object called name.
// Returns domain.ErrNotFound when the object does not exist.
func (s *MinioStore) Open(ctx context.Context, name string) (File, error) {
	if err := checkName(name); err != nil {
		return File{}, fmt.Errorf("upload.MinioStore.Open: %w", domain.ErrNotFound)
	}

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return File{}, fmt.Errorf("upload.MinioStore.Open: %w", err)
	}

	// GetObject is lazy; Stat performs the request and surfaces missing keys.
	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return File{}, fmt.Errorf("upload.MinioStore.Open: %w", domain.ErrNotFound)
		}
		return File{}, fmt.Errorf("upload.MinioStore.Open: stat: %w", err)
	}

	return File{ReadSeekCloser: obj, ModTime: info.LastModified}, nil
}
