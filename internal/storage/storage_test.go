package storage

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"radar/internal/config"
)

func TestEmbedded_Resolve(t *testing.T) {
	store := NewEmbedded()

	for _, name := range []string{"radar-hero", "workflow-illustration"} {
		a, err := store.Resolve(context.Background(), name)
		require.NoError(t, err, name)
		assert.Equal(t, name, a.Name)
		assert.Equal(t, "image/svg+xml", a.ContentType)
		assert.False(t, a.Remote())
		assert.True(t, strings.HasPrefix(string(a.Body), "<svg"), name)
	}

	assert.NoError(t, store.Ping(context.Background()))
}

func TestEmbedded_ResolveErrors(t *testing.T) {
	store := NewEmbedded()

	tests := []struct {
		name    string
		asset   string
		wantErr error
	}{
		{name: "missing", asset: "logo", wantErr: ErrAssetNotFound},
		{name: "traversal", asset: "../go", wantErr: ErrInvalidAssetName},
		{name: "extension", asset: "radar-hero.svg", wantErr: ErrInvalidAssetName},
		{name: "uppercase", asset: "Radar", wantErr: ErrInvalidAssetName},
		{name: "empty", asset: "", wantErr: ErrInvalidAssetName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Resolve(context.Background(), tt.asset)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

type mockObjectAPI struct {
	mock.Mock
}

func (m *mockObjectAPI) StatObject(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	args := m.Called(ctx, bucket, key)
	return args.Get(0).(minio.ObjectInfo), args.Error(1)
}

func (m *mockObjectAPI) PresignedGetObject(ctx context.Context, bucket, key string, expiry time.Duration, params url.Values) (*url.URL, error) {
	args := m.Called(ctx, bucket, key, expiry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*url.URL), args.Error(1)
}

func (m *mockObjectAPI) BucketExists(ctx context.Context, bucket string) (bool, error) {
	args := m.Called(ctx, bucket)
	return args.Bool(0), args.Error(1)
}

func TestMinIO_Resolve(t *testing.T) {
	ctx := context.Background()
	signed, _ := url.Parse("https://minio.local/radar/assets/radar-hero.svg?X-Amz-Signature=abc")

	tests := []struct {
		name       string
		setupMocks func(*mockObjectAPI)
		want       Asset
		wantErr    error
		errText    string
	}{
		{
			name: "presigned",
			setupMocks: func(m *mockObjectAPI) {
				m.On("StatObject", ctx, "radar", "assets/radar-hero.svg").Return(minio.ObjectInfo{ContentType: "image/svg+xml"}, nil)
				m.On("PresignedGetObject", ctx, "radar", "assets/radar-hero.svg", 5*time.Minute).Return(signed, nil)
			},
			want: Asset{Name: "radar-hero", ContentType: "image/svg+xml", URL: signed.String()},
		},
		{
			name: "missing content type",
			setupMocks: func(m *mockObjectAPI) {
				m.On("StatObject", ctx, "radar", "assets/radar-hero.svg").Return(minio.ObjectInfo{}, nil)
				m.On("PresignedGetObject", ctx, "radar", "assets/radar-hero.svg", 5*time.Minute).Return(signed, nil)
			},
			want: Asset{Name: "radar-hero", ContentType: "image/svg+xml", URL: signed.String()},
		},
		{
			name: "no such key",
			setupMocks: func(m *mockObjectAPI) {
				m.On("StatObject", ctx, "radar", "assets/radar-hero.svg").Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})
			},
			wantErr: ErrAssetNotFound,
		},
		{
			name: "stat failure",
			setupMocks: func(m *mockObjectAPI) {
				m.On("StatObject", ctx, "radar", "assets/radar-hero.svg").Return(minio.ObjectInfo{}, errors.New("connection refused"))
			},
			errText: "stat asset radar-hero",
		},
		{
			name: "presign failure",
			setupMocks: func(m *mockObjectAPI) {
				m.On("StatObject", ctx, "radar", "assets/radar-hero.svg").Return(minio.ObjectInfo{}, nil)
				m.On("PresignedGetObject", ctx, "radar", "assets/radar-hero.svg", 5*time.Minute).Return(nil, errors.New("bad creds"))
			},
			errText: "presign asset radar-hero",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(mockObjectAPI)
			tt.setupMocks(api)
			store := newMinIOStore(api, "radar", "assets/", 5*time.Minute)

			got, err := store.Resolve(ctx, "radar-hero")
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				assert.ErrorContains(t, err, tt.errText)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				assert.True(t, got.Remote())
			}
			api.AssertExpectations(t)
		})
	}
}

func TestMinIO_ResolveInvalidName(t *testing.T) {
	api := new(mockObjectAPI)
	store := newMinIOStore(api, "radar", "assets/", time.Minute)

	_, err := store.Resolve(context.Background(), "../secrets")
	assert.ErrorIs(t, err, ErrInvalidAssetName)
	api.AssertNotCalled(t, "StatObject", mock.Anything, mock.Anything, mock.Anything)
}

func TestMinIO_Ping(t *testing.T) {
	ctx := context.Background()

	api := new(mockObjectAPI)
	api.On("BucketExists", ctx, "radar").Return(true, nil).Once()
	api.On("BucketExists", ctx, "radar").Return(false, nil).Once()
	api.On("BucketExists", ctx, "radar").Return(false, errors.New("timeout")).Once()
	store := newMinIOStore(api, "radar", "", 0)

	assert.NoError(t, store.Ping(ctx))
	assert.ErrorContains(t, store.Ping(ctx), "does not exist")
	assert.ErrorContains(t, store.Ping(ctx), "check bucket existence")
	assert.Equal(t, 15*time.Minute, store.ttl)
}

func TestNewMinIO_Validation(t *testing.T) {
	_, err := NewMinIO(config.MinIOConfig{}, time.Minute)
	assert.ErrorContains(t, err, "endpoint is required")

	_, err = NewMinIO(config.MinIOConfig{Endpoint: "localhost:9000"}, time.Minute)
	assert.ErrorContains(t, err, "credentials are required")

	_, err = NewMinIO(config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}, time.Minute)
	assert.ErrorContains(t, err, "bucket is required")
}
