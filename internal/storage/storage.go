// Package storage serves the static images shown on the dashboard.
// Assets live either in the binary or in an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"regexp"
)

// ErrAssetNotFound is returned when no asset exists under the requested name.
var ErrAssetNotFound = errors.New("asset not found")

// ErrInvalidAssetName is returned for names that are not a lowercase slug.
var ErrInvalidAssetName = errors.New("invalid asset name")

var assetName = regexp.MustCompile(`^[a-z0-9-]+$`)

// Asset is a resolved image. Exactly one of Body or URL is set:
// embedded assets carry their bytes, remote assets a presigned download URL.
type Asset struct {
	Name        string
	ContentType string
	Body        []byte
	URL         string
}

// Remote reports whether the asset must be fetched from URL.
func (a Asset) Remote() bool {
	return a.URL != ""
}

// AssetStore resolves dashboard images by name. Names are the file base without extension.
type AssetStore interface {
	// Resolve looks up an asset, returning ErrAssetNotFound if it does not exist.
	Resolve(ctx context.Context, name string) (Asset, error)
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

const svgContentType = "image/svg+xml"

// objectKey maps an asset name to its file or object key.
func objectKey(prefix, name string) (string, error) {
	if !assetName.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return path.Join(prefix, name+".svg"), nil
}
