package output

import (
	"encoding/json"
	"fmt"

	"github.com/temirov/snapmd/internal/types"
)

// errorMarshalJSONFormat reports a failed document serialization.
const errorMarshalJSONFormat = "marshal snapshot document: %w"

// jsonDocument is the serializable shape of a snapshot document.
type jsonDocument struct {
	Project    string               `json:"project"`
	Root       string               `json:"root"`
	ModulePath string               `json:"modulePath,omitempty"`
	Outline    string               `json:"outline"`
	Files      []types.FileRecord   `json:"files"`
	Summary    *types.OutputSummary `json:"summary,omitempty"`
}

// RenderJSON returns document as an indented JSON object. The outline string
// is identical to the one embedded in the Markdown format.
func RenderJSON(document *types.SnapshotDocument) (string, error) {
	payload := jsonDocument{
		Project:    document.ProjectName,
		Root:       document.RootPath,
		ModulePath: document.ModulePath,
		Outline:    RenderOutline(document.Entries),
		Files:      document.Files,
		Summary:    document.Summary,
	}
	if payload.Files == nil {
		payload.Files = []types.FileRecord{}
	}
	serialized, marshalError := json.MarshalIndent(payload, "", "  ")
	if marshalError != nil {
		return "", fmt.Errorf(errorMarshalJSONFormat, marshalError)
	}
	return string(serialized), nil
}
