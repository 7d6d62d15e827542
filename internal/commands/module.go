package commands

import (
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// goModuleFileName is the module definition file read from the snapshot root.
const goModuleFileName = "go.mod"

// DetectModulePath returns the Go module path declared by go.mod in root, or
// an empty string when the root carries no parseable module file.
func DetectModulePath(root string) string {
	goModBytes, readError := os.ReadFile(filepath.Join(root, goModuleFileName))
	if readError != nil {
		return ""
	}
	moduleFile, parseError := modfile.ParseLax(goModuleFileName, goModBytes, nil)
	if parseError != nil || moduleFile.Module == nil {
		return ""
	}
	return moduleFile.Module.Mod.Path
}
