package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-getter"
	"github.com/ms-henglu/orgchart/internal/log"
)

// CacheDirEnv overrides the global cache location.
const CacheDirEnv = "ORGCHART_CACHE_DIR"

// GlobalCacheDir returns the global cache directory.
// It checks ORGCHART_CACHE_DIR first, then defaults to ~/.orgchart/cache.
func GlobalCacheDir() (string, error) {
	if dir := os.Getenv(CacheDirEnv); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		cwd, wdErr := os.Getwd()
		if wdErr != nil {
			return "", fmt.Errorf("failed to get user home directory (%v) and current working directory (%w)", err, wdErr)
		}
		log.Warn(fmt.Sprintf("Failed to get user home directory: %v. Falling back to current directory for cache. Set %s to specify a custom cache location.", err, CacheDirEnv))
		return filepath.Join(cwd, WorkDir, "cache"), nil
	}
	return filepath.Join(homeDir, WorkDir, "cache"), nil
}

// IsLocal reports whether src is a plain filesystem path that can be read without fetching.
func IsLocal(src string) bool {
	if strings.Contains(src, "::") || strings.Contains(src, "://") {
		return false
	}
	if strings.HasPrefix(src, ".") || strings.HasPrefix(src, "/") || filepath.IsAbs(src) {
		return true
	}
	_, err := os.Stat(src)
	return err == nil
}

// Ensure makes sure the chart at src is in the global cache, downloading it with go-getter if needed.
// src is any single-file source go-getter understands, e.g. "https://example.com/charts/org.yaml"
// or "s3::https://s3.amazonaws.com/bucket/org.org.hcl".
// Returns the path to the cached chart and whether it was a cache hit.
func Ensure(ctx context.Context, src string) (string, bool, error) {
	cacheDir, err := GlobalCacheDir()
	if err != nil {
		return "", false, err
	}

	cachePath := filepath.Join(cacheDir, CacheKey(src))
	if _, err := os.Stat(cachePath); err == nil {
		log.Debug("Cache hit for %s (%s)", src, cachePath)
		return cachePath, true, nil
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", false, fmt.Errorf("failed to create cache directory: %w", err)
	}

	log.Debug("Downloading %s to cache...", src)
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  cachePath,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		_ = os.RemoveAll(cachePath)
		return "", false, fmt.Errorf("failed to download org chart: %w", err)
	}

	return cachePath, false, nil
}

// CacheKey returns a human-readable and unique cache file name for src.
// The chart file extension is kept so the cached copy can still be parsed by format.
func CacheKey(src string) string {
	// https://example.com/charts/org.yaml -> https---example.com-charts-org.yaml
	sanitized := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '?', '*', '"', '<', '>', '|', '&':
			return '-'
		}
		return r
	}, src)
	if len(sanitized) > 64 {
		start := len(sanitized) - 64
		for start < len(sanitized) && !utf8.RuneStart(sanitized[start]) {
			start++
		}
		sanitized = sanitized[start:]
	}

	shortHash := hashString(src)[:8]
	return fmt.Sprintf("%s-%s%s", strings.Trim(sanitized, "-."), shortHash, chartExt(src))
}

// chartExt returns the extension of the file named by src, ignoring any query string.
func chartExt(src string) string {
	p := src
	if i := strings.Index(p, "::"); i >= 0 {
		p = p[i+2:]
	}
	if u, err := url.Parse(p); err == nil && u.Path != "" {
		p = u.Path
	} else if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	ext := strings.ToLower(path.Ext(p))
	switch ext {
	case ".hcl", ".yaml", ".yml", ".json":
		return ext
	}
	return ""
}

func hashString(s string) string {
	h := sha256.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}
