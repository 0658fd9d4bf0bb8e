package app

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/zerr"
)

// materialize writes resolved remote modules under the vendor root. Local
// modules already live in the project tree and are skipped.
func materialize(root string, results []*domain.Resolution) error {
	for _, res := range results {
		path, ok := vendorPath(root, res)
		if !ok {
			continue
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return zerr.Wrap(err, "failed to create vendor directory")
		}
		if err := os.WriteFile(path, res.Content, 0o644); err != nil { //nolint:gosec // vendored sources are world-readable
			return zerr.With(zerr.Wrap(err, "failed to write vendored module"), "specifier", res.Key)
		}
	}
	return nil
}

// vendorPath maps a resolution onto a stable path under the vendor root:
// registry modules under <registry>/<name>@<version>, URL modules under
// <host>/<path>.
func vendorPath(root string, res *domain.Resolution) (string, bool) {
	switch res.Specifier.Kind {
	case domain.KindRegistry:
		reg := string(res.Specifier.Registry)
		rel := strings.TrimPrefix(res.Key, reg+":")
		ext := ".ts"
		if res.Specifier.Registry == domain.RegistryNPM {
			ext = ".tgz"
		}
		return filepath.Join(root, reg, filepath.FromSlash(rel)+ext), true
	case domain.KindURL:
		u, err := url.Parse(res.Key)
		if err != nil {
			return "", false
		}
		p := u.Path
		if p == "" || strings.HasSuffix(p, "/") {
			p += "mod.ts"
		}
		return filepath.Join(root, u.Host, filepath.FromSlash(p)), true
	}
	return "", false
}
