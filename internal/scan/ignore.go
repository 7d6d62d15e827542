package scan

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/temirov/snapmd/internal/utils"
)

// defaultIgnoreNames lists the basenames excluded from snapshots unless
// defaults are disabled. Entries match exactly, at any depth.
var defaultIgnoreNames = []string{
	utils.GitDirectoryName,
	".svn",
	".hg",
	"__pycache__",
	".vscode",
	".idea",
	"node_modules",
	".env",
	".DS_Store",
	"go.sum",
	"package-lock.json",
	"yarn.lock",
}

// DefaultIgnoreNames returns a copy of the built-in ignore set.
func DefaultIgnoreNames() []string {
	return append([]string(nil), defaultIgnoreNames...)
}

// FilterOptions configures construction of a Filter.
type FilterOptions struct {
	// Names are literal basenames excluded wherever they occur.
	Names []string
	// Patterns are glob expressions matched against basenames, or against the
	// slash-separated relative path when the pattern contains a separator.
	// A trailing slash restricts the pattern to directories and prunes them.
	Patterns []string
	// IncludeDefaults adds the built-in ignore set to Names.
	IncludeDefaults bool
}

// Filter decides which directory entries are excluded from a snapshot.
type Filter struct {
	names    map[string]struct{}
	patterns []string
}

// NewFilter builds a Filter from the provided options.
func NewFilter(options FilterOptions) *Filter {
	names := make(map[string]struct{})
	if options.IncludeDefaults {
		for _, defaultName := range defaultIgnoreNames {
			names[defaultName] = struct{}{}
		}
	}
	for _, name := range options.Names {
		trimmedName := strings.TrimSpace(name)
		if trimmedName == "" {
			continue
		}
		names[trimmedName] = struct{}{}
	}
	var patterns []string
	for _, pattern := range options.Patterns {
		trimmedPattern := strings.TrimSpace(pattern)
		if trimmedPattern == "" {
			continue
		}
		patterns = append(patterns, trimmedPattern)
	}
	return &Filter{
		names:    names,
		patterns: utils.DeduplicatePatterns(patterns),
	}
}

// IgnoresName reports whether the literal basename belongs to the ignore set.
func (filter *Filter) IgnoresName(name string) bool {
	if filter == nil {
		return false
	}
	_, found := filter.names[name]
	return found
}

// Ignores reports whether the entry with the given basename and relative path
// should be excluded. Matched directories are pruned by the scanner, so their
// descendants never reach this method.
func (filter *Filter) Ignores(name string, relativePath string, isDirectory bool) bool {
	if filter == nil {
		return false
	}
	if filter.IgnoresName(name) {
		return true
	}
	normalizedPath := filepath.ToSlash(relativePath)
	for _, patternValue := range filter.patterns {
		normalizedPattern := filepath.ToSlash(patternValue)
		isDirectoryPattern := strings.HasSuffix(normalizedPattern, "/")
		trimmedPattern := strings.TrimSuffix(normalizedPattern, "/")
		if isDirectoryPattern && !isDirectory {
			continue
		}
		if strings.Contains(trimmedPattern, "/") {
			if matched, matchError := path.Match(trimmedPattern, normalizedPath); matchError == nil && matched {
				return true
			}
			continue
		}
		if matched, matchError := path.Match(trimmedPattern, name); matchError == nil && matched {
			return true
		}
	}
	return false
}
