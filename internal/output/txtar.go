package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/tools/txtar"

	"github.com/temirov/snapmd/internal/types"
)

// txtarReadFailureFormat records an unreadable file in the archive comment.
const txtarReadFailureFormat = "could not read %s: %s\n"

// RenderTxtar returns document as a txtar archive. The comment carries the
// project title and outline; every readable file becomes an archive entry
// named by its slash-separated relative path. Unreadable files contribute a
// notice line to the comment instead of an entry.
func RenderTxtar(document *types.SnapshotDocument) string {
	commentBuilder := strings.Builder{}
	commentBuilder.WriteString(fmt.Sprintf(projectTitleFormat, document.ProjectName))
	commentBuilder.WriteString(RenderOutline(document.Entries))
	commentBuilder.WriteString("\n")

	archive := &txtar.Archive{}
	for _, record := range document.Files {
		if record.ReadError != "" {
			commentBuilder.WriteString(fmt.Sprintf(txtarReadFailureFormat, record.Path, record.ReadError))
			continue
		}
		archive.Files = append(archive.Files, txtar.File{
			Name: filepath.ToSlash(record.Path),
			Data: []byte(record.Content),
		})
	}
	archive.Comment = []byte(commentBuilder.String())
	return string(txtar.Format(archive))
}
