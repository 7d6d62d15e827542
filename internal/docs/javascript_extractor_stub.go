//go:build !cgo

package docs

// newJavaScriptExtractor returns nil when cgo is unavailable so the collector
// can gracefully skip JavaScript files on platforms that cannot build the
// tree-sitter bindings.
func newJavaScriptExtractor() declarationExtractor {
	return nil
}
