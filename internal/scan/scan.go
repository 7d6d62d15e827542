// Package scan discovers the directory entries included in a snapshot.
//
// A single pre-order traversal produces an ordered entry list that both the
// outline renderer and the content aggregator consume, so the two views of a
// project can never drift apart.
package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/snapmd/internal/types"
)

const (
	// errorRootStatFormat reports a failure to stat the snapshot root.
	errorRootStatFormat = "stat failed for '%s': %w"
	// errorRootNotDirectoryFormat reports a snapshot root that is not a directory.
	errorRootNotDirectoryFormat = "path '%s' is not a directory"
	// errorReadDirectoryFormat reports a failed directory listing during traversal.
	errorReadDirectoryFormat = "read directory '%s': %w"
)

// Options configures a traversal.
type Options struct {
	// Root is the absolute, cleaned path of the directory to scan.
	Root string
	// Filter excludes entries by name and pattern. A nil filter keeps everything.
	Filter *Filter
	// SkipPath is an absolute path dropped from the results regardless of the
	// filter. The CLI passes the resolved output path here so a snapshot never
	// ingests the document it is writing.
	SkipPath string
}

// Scan walks options.Root depth-first and returns every surviving entry in
// render order: each directory is followed by its files, then by its
// subdirectories. Sibling order is the lexicographic order of os.ReadDir,
// which keeps repeated runs byte-identical. A failed directory read aborts
// the traversal.
func Scan(options Options) ([]types.TreeEntry, error) {
	rootInformation, rootStatError := os.Stat(options.Root)
	if rootStatError != nil {
		return nil, fmt.Errorf(errorRootStatFormat, options.Root, rootStatError)
	}
	if !rootInformation.IsDir() {
		return nil, fmt.Errorf(errorRootNotDirectoryFormat, options.Root)
	}

	entries := []types.TreeEntry{{
		AbsolutePath: options.Root,
		RelativePath: ".",
		Name:         filepath.Base(options.Root),
		Kind:         types.NodeTypeDirectory,
		Depth:        0,
	}}

	collected, walkError := walkDirectory(options, options.Root, "", 0, entries)
	if walkError != nil {
		return nil, walkError
	}
	return collected, nil
}

// walkDirectory appends the files and subdirectories of directoryPath to
// entries and returns the extended slice. relativeDirectory is empty for the
// root and uses platform separators below it. parentDepth is the depth of the
// directory itself; its children render one level deeper.
func walkDirectory(options Options, directoryPath string, relativeDirectory string, parentDepth int, entries []types.TreeEntry) ([]types.TreeEntry, error) {
	directoryEntries, readError := os.ReadDir(directoryPath)
	if readError != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, directoryPath, readError)
	}

	var subdirectories []types.TreeEntry
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		absolutePath := filepath.Join(directoryPath, entryName)
		if options.SkipPath != "" && absolutePath == options.SkipPath {
			continue
		}
		relativePath := entryName
		if relativeDirectory != "" {
			relativePath = filepath.Join(relativeDirectory, entryName)
		}
		isDirectory := directoryEntry.IsDir()
		if options.Filter.Ignores(entryName, relativePath, isDirectory) {
			continue
		}
		entry := types.TreeEntry{
			AbsolutePath: absolutePath,
			RelativePath: relativePath,
			Name:         entryName,
			Depth:        parentDepth + 1,
		}
		if isDirectory {
			entry.Kind = types.NodeTypeDirectory
			subdirectories = append(subdirectories, entry)
			continue
		}
		entry.Kind = types.NodeTypeFile
		entries = append(entries, entry)
	}

	for _, subdirectory := range subdirectories {
		entries = append(entries, subdirectory)
		extended, walkError := walkDirectory(options, subdirectory.AbsolutePath, subdirectory.RelativePath, subdirectory.Depth, entries)
		if walkError != nil {
			return nil, walkError
		}
		entries = extended
	}

	return entries, nil
}
