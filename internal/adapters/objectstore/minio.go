package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"

	"elhamas/internal/domain"
)

// MinIO uploads objects to an S3 compatible bucket.
type MinIO struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

var _ domain.ObjectStorage = (*MinIO)(nil)

func NewClient(endpoint, key, secret string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(key, secret, ""),
		Secure: useSSL,
	})
}

// NewMinIO makes sure bucket exists. publicBase is prefixed to object names
// to build URLs; when empty the endpoint URL of the client is used.
func NewMinIO(ctx context.Context, client *minio.Client, bucket, publicBase string) (*MinIO, error) {
	ok, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("bucket exists: %w", err)
	}
	if !ok {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket: %w", err)
		}
		log.Info().Str("bucket", bucket).Msg("bucket created")
	}
	if publicBase == "" {
		publicBase = client.EndpointURL().String() + "/" + bucket
	}
	return &MinIO{client: client, bucket: bucket, publicBase: strings.TrimRight(publicBase, "/")}, nil
}

func (m *MinIO) Upload(ctx context.Context, objectName, contentType string, r io.Reader, size int64) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return m.publicBase + "/" + strings.TrimLeft(objectName, "/"), nil
}
