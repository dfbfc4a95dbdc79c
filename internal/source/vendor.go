package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ms-henglu/orgchart/internal/log"
	"github.com/otiai10/copy"
)

// WorkDir is the directory orgchart keeps its artifacts in, relative to the
// project directory (and to the home directory for the global cache).
const WorkDir = ".orgchart"

// Resolve returns a readable path for src: local paths are returned as is,
// anything else is fetched into the global cache first.
func Resolve(ctx context.Context, src string) (string, error) {
	if IsLocal(src) {
		return src, nil
	}

	cachePath, hit, err := Ensure(ctx, src)
	if err != nil {
		return "", err
	}
	if hit {
		log.Item(fmt.Sprintf("%s [Cache Hit]", src))
	} else {
		log.Item(fmt.Sprintf("%s [Downloaded]", src))
	}
	return cachePath, nil
}

// Vendor copies the chart at src into <projectDir>/.orgchart/charts so it can be
// committed alongside the project. Returns the path of the vendored chart.
func Vendor(ctx context.Context, projectDir string, src string) (string, error) {
	sourcePath, err := Resolve(ctx, src)
	if err != nil {
		return "", err
	}

	name := CacheKey(src)
	if IsLocal(src) {
		name = filepath.Base(src)
	}
	dst := filepath.Join(projectDir, WorkDir, "charts", name)

	if err := os.RemoveAll(dst); err != nil {
		return "", fmt.Errorf("failed to clean %s: %w", dst, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", fmt.Errorf("failed to create charts directory: %w", err)
	}

	log.Debug("Vendoring %s from %s...", src, sourcePath)
	if err := copy.Copy(sourcePath, dst, copy.Options{
		OnSymlink: func(string) copy.SymlinkAction { return copy.Deep },
	}); err != nil {
		return "", fmt.Errorf("failed to copy org chart: %w", err)
	}
	return dst, nil
}

// Clean removes the .orgchart directory of projectDir. It reports whether anything was removed.
func Clean(projectDir string) (bool, error) {
	dir := filepath.Join(projectDir, WorkDir)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return false, nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return false, fmt.Errorf("failed to remove %s directory: %w", WorkDir, err)
	}
	return true, nil
}
