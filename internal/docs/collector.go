// Package docs extracts declaration indexes from source files included in a
// snapshot when the --doc flag is used.
package docs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/snapmd/internal/types"
)

type declarationExtractor interface {
	SupportedExtensions() []string
	CollectDeclarations(filePath string, fileContent []byte) ([]types.DeclarationEntry, error)
}

// Collector routes declaration lookups to language-specific extractors.
type Collector struct {
	extensionToExtractor map[string]declarationExtractor
}

// NewCollector creates a Collector with every available extractor registered.
func NewCollector() *Collector {
	extensionToExtractor := map[string]declarationExtractor{}
	registerExtractor(extensionToExtractor, newGoExtractor())
	registerExtractor(extensionToExtractor, newPythonExtractor())
	registerExtractor(extensionToExtractor, newJavaScriptExtractor())
	return &Collector{extensionToExtractor: extensionToExtractor}
}

func registerExtractor(extensionToExtractor map[string]declarationExtractor, extractor declarationExtractor) {
	if extractor == nil {
		return
	}
	for _, extension := range extractor.SupportedExtensions() {
		extensionToExtractor[strings.ToLower(extension)] = extractor
	}
}

// CollectFromFile returns declaration entries for the provided source file.
// Unsupported extensions yield no entries and no error.
func (collector *Collector) CollectFromFile(filePath string) ([]types.DeclarationEntry, error) {
	if collector == nil {
		return nil, nil
	}
	extension := strings.ToLower(filepath.Ext(filePath))
	extractor, found := collector.extensionToExtractor[extension]
	if !found {
		return nil, nil
	}
	fileContent, readError := os.ReadFile(filePath)
	if readError != nil {
		return nil, readError
	}
	return extractor.CollectDeclarations(filePath, fileContent)
}
