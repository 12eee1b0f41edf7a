package storage

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"radar/internal/config"
)

// objectAPI is the subset of *minio.Client the asset store needs.
type objectAPI interface {
	StatObject(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	PresignedGetObject(ctx context.Context, bucket, key string, expiry time.Duration, params url.Values) (*url.URL, error)
	BucketExists(ctx context.Context, bucket string) (bool, error)
}

// minioStore resolves assets to presigned URLs on an S3-compatible backend (MinIO, AWS S3, etc.).
// It is safe for concurrent use by multiple goroutines.
type minioStore struct {
	client objectAPI
	bucket string
	prefix string
	ttl    time.Duration
}

// NewMinIO creates an AssetStore backed by MinIO.
// It validates connectivity and requires the bucket to exist; assets are uploaded out of band.
func NewMinIO(cfg config.MinIOConfig, ttl time.Duration) (AssetStore, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ms := newMinIOStore(cli, cfg.Bucket, cfg.Prefix, ttl)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ms.Ping(ctx); err != nil {
		return nil, err
	}
	return ms, nil
}

func newMinIOStore(client objectAPI, bucket, prefix string, ttl time.Duration) *minioStore {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &minioStore{client: client, bucket: bucket, prefix: prefix, ttl: ttl}
}

// Resolve checks the object exists and returns a presigned GET URL for it.
func (m *minioStore) Resolve(ctx context.Context, name string) (Asset, error) {
	key, err := objectKey(m.prefix, name)
	if err != nil {
		return Asset{}, err
	}

	st, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return Asset{}, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
		}
		return Asset{}, fmt.Errorf("stat asset %s: %w", name, err)
	}

	u, err := m.client.PresignedGetObject(ctx, m.bucket, key, m.ttl, url.Values{})
	if err != nil {
		return Asset{}, fmt.Errorf("presign asset %s: %w", name, err)
	}

	ct := st.ContentType
	if ct == "" {
		ct = svgContentType
	}
	return Asset{Name: name, ContentType: ct, URL: u.String()}, nil
}

// Ping verifies the bucket is reachable.
func (m *minioStore) Ping(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", m.bucket)
	}
	return nil
}
