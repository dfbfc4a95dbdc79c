package orgfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ms-henglu/orgchart/internal/org"
)

// ChartSuffix is the file suffix `orgchart render` discovers in the working directory.
const ChartSuffix = ".org.hcl"

// ErrUnsupportedFormat is returned for files that are not HCL, YAML or JSON.
var ErrUnsupportedFormat = errors.New("unsupported org chart format")

// Format is the serialisation of a chart file.
type Format string

const (
	FormatHCL  Format = "hcl"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s (expected .hcl, .yaml, .yml or .json)", ErrUnsupportedFormat, path)
}

// Load reads and validates the org chart stored at path.
func Load(path string) (org.Employee, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read org chart: %w", err)
	}

	return Parse(data, path, format)
}

// Parse decodes and validates an org chart in the given format.
func Parse(src []byte, filename string, format Format) (org.Employee, error) {
	var root org.Employee
	var err error
	switch format {
	case FormatHCL:
		root, err = ParseHCL(src, filename)
	case FormatYAML:
		root, err = ParseYAML(src, filename)
	case FormatJSON:
		root, err = ParseJSON(src, filename)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	if err := org.Validate(root); err != nil {
		return nil, fmt.Errorf("invalid org chart %s: %w", filename, err)
	}
	return root, nil
}

// Discover finds all *.org.hcl files in dir, sorted alphabetically.
func Discover(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+ChartSuffix))
	if err != nil {
		return nil, fmt.Errorf("failed to glob org chart files: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}
