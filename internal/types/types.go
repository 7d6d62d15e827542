// Package types defines every cross-package data structure used by the snapmd CLI.
package types

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"
	NodeTypeBinary    = "binary"

	CommandSnapshot = "snapshot"
	CommandTree     = "tree"
	CommandWatch    = "watch"
	CommandInit     = "init"

	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatTxtar    = "txtar"
)

// ValidatedPath is an absolute input path that already passed existence checks.
type ValidatedPath struct {
	AbsolutePath string
	IsDir        bool
}

// TreeEntry is a single node discovered by the scanner, recorded in render order.
type TreeEntry struct {
	AbsolutePath string
	RelativePath string
	Name         string
	Kind         string
	Depth        int
}

// IsDirectory reports whether the entry describes a directory.
func (entry TreeEntry) IsDirectory() bool {
	return entry.Kind == NodeTypeDirectory
}

// DeclarationEntry is a single declaration extracted from a source file.
type DeclarationEntry struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	Doc  string `json:"doc,omitempty"`
}

// FileRecord represents one file included in a snapshot document.
type FileRecord struct {
	Path         string             `json:"path"`
	Type         string             `json:"type"`
	Content      string             `json:"content"`
	ReadError    string             `json:"readError,omitempty"`
	Size         string             `json:"size,omitempty"`
	SizeBytes    int64              `json:"-"`
	LastModified string             `json:"lastModified,omitempty"`
	MimeType     string             `json:"mimeType,omitempty"`
	Tokens       int                `json:"tokens,omitempty"`
	Model        string             `json:"model,omitempty"`
	Declarations []DeclarationEntry `json:"declarations,omitempty"`
}

// SnapshotDocument is the fully assembled snapshot consumed by renderers.
type SnapshotDocument struct {
	ProjectName string
	RootPath    string
	ModulePath  string
	Entries     []TreeEntry
	Files       []FileRecord
	Summary     *OutputSummary
}

// OutputSummary captures aggregate information about rendered files.
type OutputSummary struct {
	TotalFiles  int    `json:"totalFiles"`
	TotalSize   string `json:"totalSize"`
	TotalTokens int    `json:"totalTokens,omitempty"`
	Model       string `json:"model,omitempty"`
}
