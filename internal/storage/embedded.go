package storage

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed assets/*.svg
var embeddedAssets embed.FS

type embeddedStore struct {
	fsys fs.FS
}

// NewEmbedded returns an AssetStore over the images compiled into the binary.
func NewEmbedded() AssetStore {
	return &embeddedStore{fsys: embeddedAssets}
}

func (s *embeddedStore) Resolve(_ context.Context, name string) (Asset, error) {
	key, err := objectKey("assets", name)
	if err != nil {
		return Asset{}, err
	}
	b, err := fs.ReadFile(s.fsys, key)
	if errors.Is(err, fs.ErrNotExist) {
		return Asset{}, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	if err != nil {
		return Asset{}, fmt.Errorf("read asset %s: %w", name, err)
	}
	return Asset{Name: name, ContentType: svgContentType, Body: b}, nil
}

func (s *embeddedStore) Ping(context.Context) error {
	return nil
}
