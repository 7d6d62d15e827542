package output

import (
	"strings"

	"github.com/temirov/snapmd/internal/types"
)

const (
	// outlineIndentUnit is the indentation prepended per tree level.
	outlineIndentUnit = "    "
	// outlineBullet prefixes every outline line.
	outlineBullet = "- "
	// outlineDirectorySuffix marks directory lines.
	outlineDirectorySuffix = "/"
)

// RenderOutline converts scanner entries into the indented outline embedded in
// snapshot documents. Every line is newline-terminated; directories carry a
// trailing slash and files render one level deeper than their directory.
func RenderOutline(entries []types.TreeEntry) string {
	outlineBuilder := strings.Builder{}
	for _, entry := range entries {
		outlineBuilder.WriteString(strings.Repeat(outlineIndentUnit, entry.Depth))
		outlineBuilder.WriteString(outlineBullet)
		outlineBuilder.WriteString(entry.Name)
		if entry.IsDirectory() {
			outlineBuilder.WriteString(outlineDirectorySuffix)
		}
		outlineBuilder.WriteString("\n")
	}
	return outlineBuilder.String()
}
