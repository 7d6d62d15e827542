package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/snapmd/internal/utils"
)

// writeTestFile creates a file with the specified content, failing the test on error.
func writeTestFile(testingHandle *testing.T, filePath string, content string) {
	testingHandle.Helper()
	if writeError := os.WriteFile(filePath, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}
}

// TestLoadIgnoreFilePatternsSkipsCommentsAndBlanks verifies comment and blank
// line handling along with pattern deduplication.
func TestLoadIgnoreFilePatternsSkipsCommentsAndBlanks(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	ignoreFilePath := filepath.Join(rootDirectory, utils.IgnoreFileName)
	writeTestFile(testingHandle, ignoreFilePath, "# build artifacts\n\n*.log\n\nbuild/\n*.log\n  spaced.txt  \n")

	patternList, loadError := LoadIgnoreFilePatterns(ignoreFilePath)
	if loadError != nil {
		testingHandle.Fatalf("LoadIgnoreFilePatterns failed: %v", loadError)
	}

	expectedPatterns := []string{"*.log", "build/", "spaced.txt"}
	if !reflect.DeepEqual(patternList, expectedPatterns) {
		testingHandle.Fatalf("unexpected patterns: got %v want %v", patternList, expectedPatterns)
	}
}

// TestLoadIgnoreFilePatternsMissingFile verifies that an absent ignore file
// yields no patterns and no error.
func TestLoadIgnoreFilePatternsMissingFile(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()

	patternList, loadError := LoadIgnoreFilePatterns(filepath.Join(rootDirectory, utils.IgnoreFileName))
	if loadError != nil {
		testingHandle.Fatalf("expected missing ignore file to succeed, got %v", loadError)
	}
	if len(patternList) != 0 {
		testingHandle.Fatalf("expected no patterns, got %v", patternList)
	}
}

// TestLoadRootIgnorePatternsReadsRootFile verifies that patterns are loaded
// from the ignore file in the root directory.
func TestLoadRootIgnorePatternsReadsRootFile(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.IgnoreFileName), "dist/\n*.tmp\n")

	patternList, loadError := LoadRootIgnorePatterns(rootDirectory)
	if loadError != nil {
		testingHandle.Fatalf("LoadRootIgnorePatterns failed: %v", loadError)
	}

	expectedPatterns := []string{"dist/", "*.tmp"}
	if !reflect.DeepEqual(patternList, expectedPatterns) {
		testingHandle.Fatalf("unexpected patterns: got %v want %v", patternList, expectedPatterns)
	}
}
