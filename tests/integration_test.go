package main_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

const (
	alphaFileName     = "alpha.txt"
	alphaFileContent  = "alpha content\n"
	nestedDirName     = "docs"
	nestedFileName    = "guide.md"
	nestedFileContent = "# Guide\n"
	outputFileName    = "project_output.md"
)

var (
	binaryBuildOnce sync.Once
	binaryBuildPath string
	binaryBuildErr  error
)

// #nosec G204
func buildBinary(testSetup *testing.T) string {
	testSetup.Helper()
	binaryBuildOnce.Do(func() {
		binaryName := "snapmd_integration_test_binary"
		if runtime.GOOS == "windows" {
			binaryName += ".exe"
		}
		buildDirectory, temporaryError := os.MkdirTemp("", "snapmd-build")
		if temporaryError != nil {
			binaryBuildErr = temporaryError
			return
		}
		binaryBuildPath = filepath.Join(buildDirectory, binaryName)

		currentDirectory, directoryError := os.Getwd()
		if directoryError != nil {
			binaryBuildErr = directoryError
			return
		}
		moduleRoot := filepath.Dir(currentDirectory)

		buildCommand := exec.Command("go", "build", "-o", binaryBuildPath, "./cmd/snapmd")
		buildCommand.Dir = moduleRoot
		outputData, buildError := buildCommand.CombinedOutput()
		if buildError != nil {
			binaryBuildErr = fmt.Errorf("build in %s: %w\n%s", moduleRoot, buildError, outputData)
		}
	})
	if binaryBuildErr != nil {
		testSetup.Fatalf("Failed to build binary: %v", binaryBuildErr)
	}
	return binaryBuildPath
}

// runCommand executes the binary with an isolated HOME so a developer's global
// configuration never leaks into assertions.
// #nosec G204
func runCommand(testSetup *testing.T, binaryPath string, arguments []string, workingDirectory string) string {
	testSetup.Helper()
	standardOutput, standardError, runError := executeCommand(testSetup, binaryPath, arguments, workingDirectory)
	if runError != nil {
		testSetup.Fatalf("Command failed unexpectedly.\n--- Command ---\n%s %s\n--- Standard Output ---\n%s\n--- Standard Error ---\n%s\n--- Error ---\n%v",
			filepath.Base(binaryPath), strings.Join(arguments, " "), standardOutput, standardError, runError)
	}
	return standardOutput
}

// runFailingCommand executes the binary expecting a non-zero exit and returns
// the standard error text.
// #nosec G204
func runFailingCommand(testSetup *testing.T, binaryPath string, arguments []string, workingDirectory string) string {
	testSetup.Helper()
	standardOutput, standardError, runError := executeCommand(testSetup, binaryPath, arguments, workingDirectory)
	if runError == nil {
		testSetup.Fatalf("Command succeeded unexpectedly.\n--- Command ---\n%s %s\n--- Standard Output ---\n%s",
			filepath.Base(binaryPath), strings.Join(arguments, " "), standardOutput)
	}
	return standardError
}

// #nosec G204
func executeCommand(testSetup *testing.T, binaryPath string, arguments []string, workingDirectory string) (string, string, error) {
	testSetup.Helper()
	command := exec.Command(binaryPath, arguments...)
	command.Dir = workingDirectory
	command.Env = append(os.Environ(), "HOME="+testSetup.TempDir(), "USERPROFILE="+testSetup.TempDir())

	var standardOutputBuffer, standardErrorBuffer bytes.Buffer
	command.Stdout = &standardOutputBuffer
	command.Stderr = &standardErrorBuffer
	runError := command.Run()
	return standardOutputBuffer.String(), standardErrorBuffer.String(), runError
}

// buildFixtureProject creates a small project tree with a nested directory and
// a node_modules directory that default ignores should prune.
func buildFixtureProject(testSetup *testing.T) string {
	testSetup.Helper()
	rootDirectory := testSetup.TempDir()
	writeFixtureFile(testSetup, filepath.Join(rootDirectory, alphaFileName), alphaFileContent)
	nestedDirectory := filepath.Join(rootDirectory, nestedDirName)
	if makeError := os.MkdirAll(nestedDirectory, 0o755); makeError != nil {
		testSetup.Fatalf("creating %s: %v", nestedDirectory, makeError)
	}
	writeFixtureFile(testSetup, filepath.Join(nestedDirectory, nestedFileName), nestedFileContent)
	nodeModulesDirectory := filepath.Join(rootDirectory, "node_modules")
	if makeError := os.MkdirAll(nodeModulesDirectory, 0o755); makeError != nil {
		testSetup.Fatalf("creating %s: %v", nodeModulesDirectory, makeError)
	}
	writeFixtureFile(testSetup, filepath.Join(nodeModulesDirectory, "index.js"), "ignored\n")
	return rootDirectory
}

func writeFixtureFile(testSetup *testing.T, filePath string, fileContent string) {
	testSetup.Helper()
	if writeError := os.WriteFile(filePath, []byte(fileContent), 0o644); writeError != nil {
		testSetup.Fatalf("writing %s: %v", filePath, writeError)
	}
}

// TestSnapshotWritesMarkdownDocument verifies the default snapshot run: the
// document layout, default ignore pruning, and self-exclusion of the output.
func TestSnapshotWritesMarkdownDocument(testSetup *testing.T) {
	binaryPath := buildBinary(testSetup)
	rootDirectory := buildFixtureProject(testSetup)

	runCommand(testSetup, binaryPath, []string{"snapshot"}, rootDirectory)

	outputPath := filepath.Join(rootDirectory, outputFileName)
	writtenBytes, readError := os.ReadFile(outputPath)
	if readError != nil {
		testSetup.Fatalf("reading %s: %v", outputPath, readError)
	}
	written := string(writtenBytes)

	expectedTitle := "# Project: " + filepath.Base(rootDirectory) + "\n\n"
	if !strings.HasPrefix(written, expectedTitle) {
		testSetup.Fatalf("expected title %q, got:\n%s", expectedTitle, written)
	}
	if !strings.Contains(written, "## Project Structure\n\n```\n- "+filepath.Base(rootDirectory)+"/\n") {
		testSetup.Fatalf("expected fenced outline in:\n%s", written)
	}
	if !strings.Contains(written, "## File: `"+alphaFileName+"`\n\n```txt\n"+alphaFileContent+"\n```\n\n") {
		testSetup.Fatalf("expected alpha section in:\n%s", written)
	}
	if !strings.Contains(written, "## File: `"+nestedDirName+"/"+nestedFileName+"`") {
		testSetup.Fatalf("expected nested file section in:\n%s", written)
	}
	if strings.Contains(written, "node_modules") {
		testSetup.Fatalf("expected node_modules to be pruned from:\n%s", written)
	}

	// A second run must not ingest the first run's output document.
	runCommand(testSetup, binaryPath, []string{"snapshot"}, rootDirectory)
	secondBytes, secondReadError := os.ReadFile(outputPath)
	if secondReadError != nil {
		testSetup.Fatalf("reading %s: %v", outputPath, secondReadError)
	}
	if !bytes.Equal(writtenBytes, secondBytes) {
		testSetup.Fatalf("expected repeated runs to produce identical documents")
	}
	if strings.Contains(string(secondBytes), outputFileName) {
		testSetup.Fatalf("expected output file to be excluded from its own snapshot")
	}
}

// TestSnapshotWritesToStdout verifies the '-' output path.
func TestSnapshotWritesToStdout(testSetup *testing.T) {
	binaryPath := buildBinary(testSetup)
	rootDirectory := buildFixtureProject(testSetup)

	standardOutput := runCommand(testSetup, binaryPath, []string{"snapshot", "-o", "-"}, rootDirectory)

	if !strings.HasPrefix(standardOutput, "# Project: "+filepath.Base(rootDirectory)) {
		testSetup.Fatalf("expected document on stdout, got:\n%s", standardOutput)
	}
	if _, statError := os.Stat(filepath.Join(rootDirectory, outputFileName)); !os.IsNotExist(statError) {
		testSetup.Fatalf("expected no output file to be written")
	}
}

// TestSnapshotHonorsExcludePatternsAndIgnoreNames verifies the traversal flags.
func TestSnapshotHonorsExcludePatternsAndIgnoreNames(testSetup *testing.T) {
	binaryPath := buildBinary(testSetup)
	rootDirectory := buildFixtureProject(testSetup)
	writeFixtureFile(testSetup, filepath.Join(rootDirectory, "debug.log"), "noise\n")

	standardOutput := runCommand(testSetup, binaryPath, []string{"snapshot", "-o", "-", "-e", "*.log", "--ignore", nestedDirName}, rootDirectory)

	if strings.Contains(standardOutput, "debug.log") {
		testSetup.Fatalf("expected excluded pattern to prune debug.log from:\n%s", standardOutput)
	}
	if strings.Contains(standardOutput, nestedFileName) {
		testSetup.Fatalf("expected ignored name to prune %s from:\n%s", nestedDirName, standardOutput)
	}
}

// TestSnapshotDisablesDefaultIgnores verifies --no-default-ignores.
func TestSnapshotDisablesDefaultIgnores(testSetup *testing.T) {
	binaryPath := buildBinary(testSetup)
	rootDirectory := buildFixtureProject(testSetup)

	standardOutput := runCommand(testSetup, binaryPath, []string{"snapshot", "-o", "-", "--no-default-ignores"}, rootDirectory)

	if !strings.Contains(standardOutput, "node_modules") {
		testSetup.Fatalf("expected node_modules to appear without default ignores:\n%s", standardOutput)
	}
}

// TestSnapshotReadsIgnoreFile verifies .snapmdignore handling and its flag.
func TestSnapshotReadsIgnoreFile(testSetup *testing.T) {
	binaryPath := buildBinary(testSetup)
	rootDirectory := buildFixtureProject(testSetup)
	writeFixtureFile(testSetup, filepath.Join(rootDirectory, ".snapmdignore"), "# noise\n\n"+alphaFileName+"\n")

	standardOutput := runCommand(testSetup, binaryPath, []string{"snapshot", "-o", "-"}, rootDirectory)
	if strings.Contains(standardOutput, "## File: `"+alphaFileName+"`") {
		testSetup.Fatalf("expected ignore file to prune %s from:\n%s", alphaFileName, standardOutput)
	}

	standardOutput = runCommand(testSetup, binaryPath, []string{"snapshot", "-o", "-", "--no-ignore-file"}, rootDirectory)
	if !strings.Contains(standardOutput, "## File: `"+alphaFileName+"`") {
		testSetup.Fatalf("expected --no-ignore-file to keep %s in:\n%s", alphaFileName, standardOutput)
	}
}

// TestSnapshotRendersJSON verifies the json format output.
func TestSnapshotRendersJSON(testSetup *testing.T) {
	binaryPath := buildBinary(testSetup)
	rootDirectory := buildFixtureProject(testSetup)

	standardOutput := runCommand(testSetup, binaryPath, []string{"snapshot", "-o", "-", "--format", "json"}, rootDirectory)

	decoded := struct {
		Project string `json:"project"`
		Outline string `json:"outline"`
		Files   []struct {
			Path    string `json:"path"`
			Content string `json:"content"`
		} `json:"files"`
	}{}
	if unmarshalError := json.Unmarshal([]byte(standardOutput), &decoded); unmarshalError != nil {
		testSetup.Fatalf("stdout is not valid JSON: %v\n%s", unmarshalError, standardOutput)
	}
	if decoded.Project != filepath.Base(rootDirectory) {
		testSetup.Fatalf("unexpected project name %q", decoded.Project)
	}
	if len(decoded.Files) != 2 {
		testSetup.Fatalf("expected 2 files, got %+v", decoded.Files)
	}
	if decoded.Files[0].Path != alphaFileName || decoded.Files[0].Content != alphaFileContent {
		testSetup.Fatalf("unexpected first file %+v", decoded.Files[0])
	}
}

// TestSnapshotRendersTxtar verifies the txtar format output.
func TestSnapshotRendersTxtar(testSetup *testing.T) {
	binaryPath := buildBinary(testSetup)
	rootDirectory := buildFixtureProject(testSetup)

	standardOutput := runCommand(testSetup, binaryPath, []string{"snapshot", "-o", "-", "--format", "txtar"}, rootDirectory)

	if !strings.Contains(standardOutput, "-- "+alphaFileName+" --\n"+alphaFileContent) {
		testSetup.Fatalf("expected txtar section for %s in:\n%s", alphaFileName, standardOutput)
	}
	if !strings.Contains(standardOutput, "# Project: "+filepath.Base(rootDirectory)) {
		testSetup.Fatalf("expected project title in archive comment:\n%s", standardOutput)
	}
}

// TestSnapshotRejectsUnknownFormat verifies format validation.
func TestSnapshotRejectsUnknownFormat(testSetup *testing.T) {
	binaryPath := buildBinary(testSetup)
	rootDirectory := buildFixtureProject(testSetup)

	standardError := runFailingCommand(testSetup, binaryPath, []string{"snapshot", "--format", "yaml"}, rootDirectory)
	if !strings.Contains(standardError, "Invalid format value 'yaml'") {
		testSetup.Fatalf("expected format error, got:\n%s", standardError)
	}
}

// TestSnapshotRejectsMissingPath verifies root validation.
func TestSnapshotRejectsMissingPath(testSetup *testing.T) {
	binaryPath := buildBinary(testSetup)
	rootDirectory := testSetup.TempDir()

	standardError := runFailingCommand(testSetup, binaryPath, []string{"snapshot", "absent"}, rootDirectory)
	if !strings.Contains(standardError, "does not exist") {
		testSetup.Fatalf("expected missing path error, got:\n%s", standardError)
	}
}

// TestTreeRendersOutline verifies the tree command output.
func TestTreeRendersOutline(testSetup *testing.T) {
	binaryPath := buildBinary(testSetup)
	rootDirectory := buildFixtureProject(testSetup)

	standardOutput := runCommand(testSetup, binaryPath, []string{"tree"}, rootDirectory)

	expected := "- " + filepath.Base(rootDirectory) + "/\n" +
		"    - " + alphaFileName + "\n" +
		"    - " + nestedDirName + "/\n" +
		"        - " + nestedFileName + "\n"
	if standardOutput != expected {
		testSetup.Fatalf("unexpected outline:\n--- got ---\n%q\n--- want ---\n%q", standardOutput, expected)
	}
}

// TestInitWritesConfigurationHonoredBySnapshot verifies init and configuration
// file loading end to end.
func TestInitWritesConfigurationHonoredBySnapshot(testSetup *testing.T) {
	binaryPath := buildBinary(testSetup)
	rootDirectory := buildFixtureProject(testSetup)

	standardOutput := runCommand(testSetup, binaryPath, []string{"init"}, rootDirectory)
	configurationPath := filepath.Join(rootDirectory, ".snapmd.yaml")
	if !strings.Contains(standardOutput, "Configuration written to") {
		testSetup.Fatalf("expected init confirmation, got:\n%s", standardOutput)
	}
	if _, statError := os.Stat(configurationPath); statError != nil {
		testSetup.Fatalf("expected configuration file: %v", statError)
	}

	writeFixtureFile(testSetup, configurationPath, "snapshot:\n  output: custom_output.md\n")
	runCommand(testSetup, binaryPath, []string{"snapshot"}, rootDirectory)
	if _, statError := os.Stat(filepath.Join(rootDirectory, "custom_output.md")); statError != nil {
		testSetup.Fatalf("expected configured output file: %v", statError)
	}
}

// TestVersionFlagPrintsVersion verifies the --version flag.
func TestVersionFlagPrintsVersion(testSetup *testing.T) {
	binaryPath := buildBinary(testSetup)

	standardOutput := runCommand(testSetup, binaryPath, []string{"--version"}, testSetup.TempDir())
	if !strings.HasPrefix(standardOutput, "snapmd version: ") {
		testSetup.Fatalf("unexpected version output:\n%s", standardOutput)
	}
}

// TestSnapshotSummarySection verifies the --summary toggle.
func TestSnapshotSummarySection(testSetup *testing.T) {
	binaryPath := buildBinary(testSetup)
	rootDirectory := buildFixtureProject(testSetup)

	standardOutput := runCommand(testSetup, binaryPath, []string{"snapshot", "-o", "-", "--summary"}, rootDirectory)
	if !strings.Contains(standardOutput, "## Summary\n\n- Files: 2\n") {
		testSetup.Fatalf("expected summary section in:\n%s", standardOutput)
	}
}

// TestSnapshotDocDeclarations verifies the --doc toggle on a Go source file.
func TestSnapshotDocDeclarations(testSetup *testing.T) {
	binaryPath := buildBinary(testSetup)
	rootDirectory := testSetup.TempDir()
	writeFixtureFile(testSetup, filepath.Join(rootDirectory, "main.go"), "// Package main runs the tool.\npackage main\n\n// Run starts the tool.\nfunc Run() {}\n")

	standardOutput := runCommand(testSetup, binaryPath, []string{"snapshot", "-o", "-", "--doc"}, rootDirectory)
	if !strings.Contains(standardOutput, "Declarations:\n\n- package main: Package main runs the tool.\n- function main.Run: Run starts the tool.\n") {
		testSetup.Fatalf("expected declaration listing in:\n%s", standardOutput)
	}
}
