package media

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/linskybing/bootcamp-go/internal/config"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioStore struct {
	client    *minioSDK.Client
	bucket    string
	publicURL string
	prefix    string
}

var _ Store = (*MinioStore)(nil)

// NewMinioStore connects to MinIO and creates the bucket when missing.
func NewMinioStore(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool, publicURL string) (*MinioStore, error) {
	client, err := minioSDK.New(endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", bucket, err)
		}
		log.Printf("[media] bucket created: %s", bucket)
	}

	if publicURL == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, endpoint, bucket)
	}

	return &MinioStore{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		prefix:    "testimonials",
	}, nil
}

// FromConfig returns nil when no MinIO endpoint is configured.
func FromConfig(ctx context.Context) (Store, error) {
	if config.MinioEndpoint == "" {
		return nil, nil
	}
	store, err := NewMinioStore(ctx, config.MinioEndpoint, config.MinioAccessKey, config.MinioSecretKey,
		config.MinioBucket, config.MinioUseSSL, config.MinioPublicURL)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (s *MinioStore) Put(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error) {
	if err := CheckFile(contentType, size); err != nil {
		return "", err
	}
	object := ObjectName(s.prefix, name)
	_, err := s.client.PutObject(ctx, s.bucket, object, body, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	return s.publicURL + "/" + object, nil
}

func (s *MinioStore) Remove(ctx context.Context, url string) error {
	object := strings.TrimPrefix(url, s.publicURL+"/")
	if object == url {
		return nil
	}
	return s.client.RemoveObject(ctx, s.bucket, object, minioSDK.RemoveObjectOptions{})
}
