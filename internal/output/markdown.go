// Package output renders snapshot documents in the supported formats.
package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/temirov/snapmd/internal/types"
)

const (
	// projectTitleFormat opens every snapshot document.
	projectTitleFormat = "# Project: %s\n\n"
	// structureSectionHeader introduces the embedded outline.
	structureSectionHeader = "## Project Structure\n\n"
	// structureBlockFormat fences the outline. The outline already ends with a
	// newline, so the closing fence is preceded by a blank line.
	structureBlockFormat = "```\n%s\n```\n\n"
	// fileSectionFormat introduces one file of the snapshot.
	fileSectionFormat = "## File: `%s`\n\n"
	// fileFenceOpenFormat opens a content block tagged with the file extension.
	fileFenceOpenFormat = "```%s\n"
	// fileFenceClose terminates a content block.
	fileFenceClose = "\n```\n\n"
	// fileReadFailureFormat replaces the content block of an unreadable file.
	fileReadFailureFormat = "Could not read file: %s\n\n"
	// declarationsHeader introduces the declaration index of a file.
	declarationsHeader = "Declarations:\n\n"
	// declarationLineFormat renders one declaration without documentation.
	declarationLineFormat = "- %s %s\n"
	// declarationDocLineFormat renders one documented declaration.
	declarationDocLineFormat = "- %s %s: %s\n"
	// summarySectionHeader introduces the optional summary section.
	summarySectionHeader = "## Summary\n\n"
	// summaryFilesLineFormat reports the total file count.
	summaryFilesLineFormat = "- Files: %d\n"
	// summarySizeLineFormat reports the accumulated content size.
	summarySizeLineFormat = "- Total size: %s\n"
	// summaryTokensLineFormat reports the token total and tokenizer model.
	summaryTokensLineFormat = "- Tokens: %d (%s)\n"
)

// FenceTag returns the fenced-block language tag for a file path: the
// extension without its leading dot, or an empty string when the name has no
// extension or its only dot is the leading one.
func FenceTag(filePath string) string {
	baseName := filepath.Base(filePath)
	extension := filepath.Ext(baseName)
	if extension == baseName {
		return ""
	}
	return strings.TrimPrefix(extension, ".")
}

// WriteMarkdown renders document to writer in the canonical Markdown layout:
// a project title, the fenced outline, then one header and fenced content
// block per file in traversal order. Files that failed to read contribute a
// short notice instead of a content block. Declarations and the summary
// section appear only when the document carries them.
func WriteMarkdown(writer io.Writer, document *types.SnapshotDocument) error {
	if _, writeError := fmt.Fprintf(writer, projectTitleFormat, document.ProjectName); writeError != nil {
		return writeError
	}
	if _, writeError := io.WriteString(writer, structureSectionHeader); writeError != nil {
		return writeError
	}
	if _, writeError := fmt.Fprintf(writer, structureBlockFormat, RenderOutline(document.Entries)); writeError != nil {
		return writeError
	}

	for _, record := range document.Files {
		if _, writeError := fmt.Fprintf(writer, fileSectionFormat, record.Path); writeError != nil {
			return writeError
		}
		if record.ReadError != "" {
			if _, writeError := fmt.Fprintf(writer, fileReadFailureFormat, record.ReadError); writeError != nil {
				return writeError
			}
			continue
		}
		if _, writeError := fmt.Fprintf(writer, fileFenceOpenFormat, FenceTag(record.Path)); writeError != nil {
			return writeError
		}
		if _, writeError := io.WriteString(writer, record.Content); writeError != nil {
			return writeError
		}
		if _, writeError := io.WriteString(writer, fileFenceClose); writeError != nil {
			return writeError
		}
		if writeError := writeDeclarations(writer, record.Declarations); writeError != nil {
			return writeError
		}
	}

	return writeSummary(writer, document.Summary)
}

// RenderMarkdown returns the Markdown document as a string.
func RenderMarkdown(document *types.SnapshotDocument) (string, error) {
	documentBuilder := strings.Builder{}
	if writeError := WriteMarkdown(&documentBuilder, document); writeError != nil {
		return "", writeError
	}
	return documentBuilder.String(), nil
}

func writeDeclarations(writer io.Writer, declarations []types.DeclarationEntry) error {
	if len(declarations) == 0 {
		return nil
	}
	if _, writeError := io.WriteString(writer, declarationsHeader); writeError != nil {
		return writeError
	}
	for _, declaration := range declarations {
		if declaration.Doc == "" {
			if _, writeError := fmt.Fprintf(writer, declarationLineFormat, declaration.Kind, declaration.Name); writeError != nil {
				return writeError
			}
			continue
		}
		if _, writeError := fmt.Fprintf(writer, declarationDocLineFormat, declaration.Kind, declaration.Name, firstDocLine(declaration.Doc)); writeError != nil {
			return writeError
		}
	}
	_, writeError := io.WriteString(writer, "\n")
	return writeError
}

func writeSummary(writer io.Writer, summary *types.OutputSummary) error {
	if summary == nil {
		return nil
	}
	if _, writeError := io.WriteString(writer, summarySectionHeader); writeError != nil {
		return writeError
	}
	if _, writeError := fmt.Fprintf(writer, summaryFilesLineFormat, summary.TotalFiles); writeError != nil {
		return writeError
	}
	if _, writeError := fmt.Fprintf(writer, summarySizeLineFormat, summary.TotalSize); writeError != nil {
		return writeError
	}
	if summary.Model != "" {
		if _, writeError := fmt.Fprintf(writer, summaryTokensLineFormat, summary.TotalTokens, summary.Model); writeError != nil {
			return writeError
		}
	}
	return nil
}

// firstDocLine reduces a documentation string to its first non-empty line.
func firstDocLine(documentation string) string {
	for _, line := range strings.Split(documentation, "\n") {
		trimmedLine := strings.TrimSpace(line)
		if trimmedLine != "" {
			return trimmedLine
		}
	}
	return ""
}
