// Package config loads application configuration files and ignore pattern files.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/snapmd/internal/utils"
)

// LoadIgnoreFilePatterns reads a specified ignore file and returns its patterns.
// Blank lines and lines starting with "#" are skipped. A missing file yields no
// patterns and no error.
//
// #nosec G304
func LoadIgnoreFilePatterns(ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close %s: %v\n", ignoreFilePath, closeError)
		}
	}()

	var ignorePatterns []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
			continue
		}
		ignorePatterns = append(ignorePatterns, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return utils.DeduplicatePatterns(ignorePatterns), nil
}

// LoadRootIgnorePatterns reads utils.IgnoreFileName from the root directory and
// returns the patterns it contains.
func LoadRootIgnorePatterns(rootDirectoryPath string) ([]string, error) {
	ignoreFilePath := filepath.Join(rootDirectoryPath, utils.IgnoreFileName)
	ignorePatterns, loadError := LoadIgnoreFilePatterns(ignoreFilePath)
	if loadError != nil {
		return nil, fmt.Errorf("loading %s from %s: %w", utils.IgnoreFileName, rootDirectoryPath, loadError)
	}
	return ignorePatterns, nil
}
