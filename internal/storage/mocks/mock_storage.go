package mocks

import (
	"context"

	"radar/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockAssetStore struct {
	mock.Mock
}

func (m *MockAssetStore) Resolve(ctx context.Context, name string) (storage.Asset, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(storage.Asset), args.Error(1)
}

func (m *MockAssetStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
