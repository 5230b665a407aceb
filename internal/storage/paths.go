// Package storage persists generated move lists in a BadgerDB cache.
package storage

import (
	"os"
	"path/filepath"
)

const appName = "chessmg"

// CacheDirEnv overrides the move cache directory when set.
const CacheDirEnv = "CHESSMG_CACHE_DIR"

// CacheDir returns the directory holding the move cache database,
// creating it if needed: $CHESSMG_CACHE_DIR when set, otherwise
// chessmg/movecache under the user cache directory.
func CacheDir() (string, error) {
	dir := os.Getenv(CacheDirEnv)
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, appName, "movecache")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
