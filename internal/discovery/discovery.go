package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns match every input-set file below the root. Hidden files
// and directories (rc files, .git) are never matched.
var DefaultPatterns = []string{"**/*.yaml", "**/*.yml", "**/*.json"}

// Format is the encoding of an input file.
type Format int

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatJSON
)

// String returns the human-readable name of the format.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// DetectFormat determines the encoding from the file extension.
func DetectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case "":
		return FormatUnknown, fmt.Errorf("unsupported file: %s has no extension", filepath.Base(path))
	default:
		return FormatUnknown, fmt.Errorf("unsupported file type %s: expected .yaml, .yml or .json", ext)
	}
}

// File represents a discovered input file with its metadata
type File struct {
	Path     string
	RelPath  string
	Size     int64
	Format   Format
	Contents string
}

// FileDiscovery finds input files below a root directory.
type FileDiscovery struct {
	rootPath string
}

// NewFileDiscovery creates a new FileDiscovery instance
func NewFileDiscovery(rootPath string) *FileDiscovery {
	return &FileDiscovery{rootPath: rootPath}
}

// DiscoverFiles returns files matching any of patterns (DefaultPatterns when
// empty), sorted by relative path, each file at most once.
func (fd *FileDiscovery) DiscoverFiles(patterns []string) ([]File, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	seen := make(map[string]bool)
	var files []File

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q", pattern)
		}

		matches, err := doublestar.Glob(os.DirFS(fd.rootPath), pattern)
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] || isHidden(match) {
				continue
			}
			f, ok := fd.processMatch(match)
			if !ok {
				continue
			}
			seen[match] = true
			files = append(files, f)
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelPath < files[j].RelPath
	})
	return files, nil
}

// isHidden reports whether any element of the slash-separated path starts
// with a dot.
func isHidden(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}

// processMatch converts a glob match into a File, returning false if the
// match should be skipped.
func (fd *FileDiscovery) processMatch(match string) (File, bool) {
	fullPath := filepath.Join(fd.rootPath, filepath.FromSlash(match))

	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		return File{}, false
	}

	format, err := DetectFormat(match)
	if err != nil {
		return File{}, false
	}

	contents, err := os.ReadFile(fullPath)
	if err != nil {
		return File{}, false
	}

	return File{
		Path:     fullPath,
		RelPath:  match,
		Size:     info.Size(),
		Format:   format,
		Contents: string(contents),
	}, true
}
