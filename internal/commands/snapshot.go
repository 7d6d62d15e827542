// Package commands assembles snapshot documents from scanned directory trees.
package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/temirov/snapmd/internal/docs"
	"github.com/temirov/snapmd/internal/output"
	"github.com/temirov/snapmd/internal/scan"
	"github.com/temirov/snapmd/internal/tokenizer"
	"github.com/temirov/snapmd/internal/types"
	"github.com/temirov/snapmd/internal/utils"
)

const (
	// WarningFileReadFormat reports a file that could not be read.
	WarningFileReadFormat = "Warning: failed to read file %s: %v\n"
	// WarningTokenCountFormat reports a failed token count.
	WarningTokenCountFormat = "Warning: failed to count tokens for %s: %v\n"
)

// SnapshotOptions configures document assembly.
type SnapshotOptions struct {
	// Root is the absolute, cleaned snapshot root.
	Root string
	// Filter excludes entries by name and pattern.
	Filter *scan.Filter
	// SkipPath is the resolved output path dropped during traversal.
	SkipPath string
	// TokenCounter enables per-file token counts when non-nil.
	TokenCounter tokenizer.Counter
	// TokenModel names the tokenizer model attached to counted records.
	TokenModel string
	// Collector enables declaration extraction when non-nil.
	Collector *docs.Collector
	// IncludeSummary attaches aggregate totals to the document.
	IncludeSummary bool
	// Warn receives recoverable per-file problems. Nil discards them.
	Warn func(string)
}

// loadedFile pairs a scanner entry with the bytes read for it.
type loadedFile struct {
	entry       types.TreeEntry
	data        []byte
	information os.FileInfo
	readError   error
}

// BuildSnapshot scans the root, reads every surviving file, and assembles the
// document model consumed by the renderers. File reading and record assembly
// run concurrently; record order always matches traversal order. A per-file
// read failure becomes a record carrying the error, never a traversal failure.
func BuildSnapshot(ctx context.Context, options SnapshotOptions) (*types.SnapshotDocument, error) {
	entries, scanError := scan.Scan(scan.Options{
		Root:     options.Root,
		Filter:   options.Filter,
		SkipPath: options.SkipPath,
	})
	if scanError != nil {
		return nil, scanError
	}

	document := &types.SnapshotDocument{
		ProjectName: filepath.Base(options.Root),
		RootPath:    options.Root,
		ModulePath:  DetectModulePath(options.Root),
		Entries:     entries,
	}

	warn := options.Warn
	if warn == nil {
		warn = func(string) {}
	}

	group, groupContext := errgroup.WithContext(ctx)
	loadedFiles := make(chan loadedFile)

	group.Go(func() error {
		defer close(loadedFiles)
		for _, entry := range entries {
			if entry.IsDirectory() {
				continue
			}
			loaded := loadedFile{entry: entry}
			loaded.data, loaded.readError = os.ReadFile(entry.AbsolutePath)
			if loaded.readError == nil {
				if information, statError := os.Stat(entry.AbsolutePath); statError == nil {
					loaded.information = information
				}
			}
			select {
			case <-groupContext.Done():
				return groupContext.Err()
			case loadedFiles <- loaded:
			}
		}
		return nil
	})

	tracker := summaryTracker{model: options.TokenModel, counting: options.TokenCounter != nil}
	group.Go(func() error {
		for {
			select {
			case <-groupContext.Done():
				return groupContext.Err()
			case loaded, open := <-loadedFiles:
				if !open {
					return nil
				}
				record := buildRecord(loaded, options, warn)
				document.Files = append(document.Files, record)
				tracker.add(record)
			}
		}
	})

	if waitError := group.Wait(); waitError != nil {
		return nil, waitError
	}

	if options.IncludeSummary {
		document.Summary = tracker.summary()
	}
	return document, nil
}

// BuildOutline scans the root and renders only the directory outline.
func BuildOutline(options SnapshotOptions) (string, error) {
	entries, scanError := scan.Scan(scan.Options{
		Root:     options.Root,
		Filter:   options.Filter,
		SkipPath: options.SkipPath,
	})
	if scanError != nil {
		return "", scanError
	}
	return output.RenderOutline(entries), nil
}

// buildRecord converts one loaded file into its document record. Content is
// decoded leniently: byte sequences that are not valid UTF-8 are dropped, so
// binary files yield garbled but renderable text.
func buildRecord(loaded loadedFile, options SnapshotOptions, warn func(string)) types.FileRecord {
	record := types.FileRecord{
		Path: loaded.entry.RelativePath,
		Type: types.NodeTypeFile,
	}
	if loaded.readError != nil {
		warn(fmt.Sprintf(WarningFileReadFormat, loaded.entry.AbsolutePath, loaded.readError))
		record.ReadError = loaded.readError.Error()
		return record
	}

	record.Content = strings.ToValidUTF8(string(loaded.data), "")
	record.MimeType = utils.DetectContentMimeType(loaded.data)
	if utils.IsBinary(loaded.data) {
		record.Type = types.NodeTypeBinary
	}
	if loaded.information != nil {
		record.SizeBytes = loaded.information.Size()
		record.Size = utils.FormatFileSize(loaded.information.Size())
		record.LastModified = utils.FormatTimestamp(loaded.information.ModTime())
	}

	if options.TokenCounter != nil && record.Type != types.NodeTypeBinary {
		countResult, tokenError := tokenizer.CountBytes(options.TokenCounter, loaded.data)
		if tokenError != nil {
			warn(fmt.Sprintf(WarningTokenCountFormat, loaded.entry.AbsolutePath, tokenError))
		} else if countResult.Counted {
			record.Tokens = countResult.Tokens
			if record.Tokens > 0 && options.TokenModel != "" {
				record.Model = options.TokenModel
			}
		}
	}

	if options.Collector != nil && record.Type == types.NodeTypeFile {
		if declarations, collectError := options.Collector.CollectFromFile(loaded.entry.AbsolutePath); collectError == nil && len(declarations) > 0 {
			record.Declarations = declarations
		}
	}

	return record
}

// summaryTracker accumulates aggregate totals across file records.
type summaryTracker struct {
	files    int
	bytes    int64
	tokens   int
	model    string
	counting bool
}

func (tracker *summaryTracker) add(record types.FileRecord) {
	tracker.files++
	tracker.bytes += record.SizeBytes
	tracker.tokens += record.Tokens
}

// summary reports token totals whenever counting ran, so a tree of files the
// counter refused still shows a zero total instead of dropping the line.
func (tracker *summaryTracker) summary() *types.OutputSummary {
	outputSummary := &types.OutputSummary{
		TotalFiles: tracker.files,
		TotalSize:  utils.FormatFileSize(tracker.bytes),
	}
	if tracker.counting {
		outputSummary.TotalTokens = tracker.tokens
		outputSummary.Model = tracker.model
	}
	return outputSummary
}
