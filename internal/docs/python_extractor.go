package docs

import (
	"strings"
	"unicode"

	"github.com/temirov/snapmd/internal/types"
)

type pythonExtractor struct{}

func newPythonExtractor() declarationExtractor {
	return &pythonExtractor{}
}

func (extractor *pythonExtractor) SupportedExtensions() []string {
	return []string{pythonFileExtension}
}

// CollectDeclarations scans for top-level def and class statements and pairs
// each with the first line of the docstring that follows, when one exists.
func (extractor *pythonExtractor) CollectDeclarations(_ string, fileContent []byte) ([]types.DeclarationEntry, error) {
	if len(fileContent) == 0 {
		return nil, nil
	}
	normalized := strings.ReplaceAll(string(fileContent), "\r\n", "\n")
	lines := strings.Split(normalized, "\n")

	var entries []types.DeclarationEntry
	for lineIndex := 0; lineIndex < len(lines); lineIndex++ {
		currentLine := lines[lineIndex]
		if countIndentation(currentLine) != 0 {
			continue
		}
		trimmedLine := strings.TrimSpace(currentLine)
		if className, matched := matchPythonClass(trimmedLine); matched {
			entries = append(entries, types.DeclarationEntry{
				Kind: declarationKindClass,
				Name: className,
				Doc:  findPythonDocstring(lines, lineIndex+1),
			})
			continue
		}
		if functionName, matched := matchPythonFunction(trimmedLine); matched {
			entries = append(entries, types.DeclarationEntry{
				Kind: declarationKindFunction,
				Name: functionName,
				Doc:  findPythonDocstring(lines, lineIndex+1),
			})
		}
	}
	return entries, nil
}

// findPythonDocstring returns the summary line of the docstring opening at or
// after startIndex, or an empty string when the block starts with any other
// statement.
func findPythonDocstring(lines []string, startIndex int) string {
	for lineIndex := startIndex; lineIndex < len(lines); lineIndex++ {
		trimmedLine := strings.TrimSpace(lines[lineIndex])
		if trimmedLine == "" {
			continue
		}
		if countIndentation(lines[lineIndex]) == 0 {
			return ""
		}
		quote := ""
		switch {
		case strings.HasPrefix(trimmedLine, `"""`):
			quote = `"""`
		case strings.HasPrefix(trimmedLine, "'''"):
			quote = "'''"
		default:
			return ""
		}
		remainder := strings.TrimPrefix(trimmedLine, quote)
		if closingIndex := strings.Index(remainder, quote); closingIndex >= 0 {
			remainder = remainder[:closingIndex]
		}
		remainder = strings.TrimSpace(remainder)
		if remainder != "" {
			return remainder
		}
		for followingIndex := lineIndex + 1; followingIndex < len(lines); followingIndex++ {
			followingLine := strings.TrimSpace(lines[followingIndex])
			if followingLine == "" {
				continue
			}
			if strings.HasPrefix(followingLine, quote) {
				return ""
			}
			if closingIndex := strings.Index(followingLine, quote); closingIndex >= 0 {
				followingLine = strings.TrimSpace(followingLine[:closingIndex])
			}
			return followingLine
		}
		return ""
	}
	return ""
}

func matchPythonClass(line string) (string, bool) {
	if !strings.HasPrefix(line, "class ") {
		return "", false
	}
	remainder := strings.TrimSpace(strings.TrimPrefix(line, "class "))
	name := readPythonIdentifier(remainder)
	return name, name != ""
}

func matchPythonFunction(line string) (string, bool) {
	trimmed := line
	if strings.HasPrefix(trimmed, "async ") {
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "async "))
	}
	if !strings.HasPrefix(trimmed, "def ") {
		return "", false
	}
	remainder := strings.TrimSpace(strings.TrimPrefix(trimmed, "def "))
	name := readPythonIdentifier(remainder)
	return name, name != ""
}

func readPythonIdentifier(input string) string {
	identifierBuilder := strings.Builder{}
	for _, runeValue := range input {
		if unicode.IsLetter(runeValue) || unicode.IsDigit(runeValue) || runeValue == '_' {
			identifierBuilder.WriteRune(runeValue)
			continue
		}
		break
	}
	return identifierBuilder.String()
}

func countIndentation(line string) int {
	indentation := 0
	for _, runeValue := range line {
		switch runeValue {
		case ' ':
			indentation++
		case '\t':
			indentation += 4
		default:
			return indentation
		}
	}
	return indentation
}
