//go:build cgo

package docs

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	javascript "github.com/smacker/go-tree-sitter/javascript"

	"github.com/temirov/snapmd/internal/types"
)

const (
	javaScriptFunctionNodeType  = "function_declaration"
	javaScriptGeneratorNodeType = "generator_function_declaration"
	javaScriptClassNodeType     = "class_declaration"
	javaScriptMethodNodeType    = "method_definition"
	javaScriptNameField         = "name"
	javaScriptPropertyField     = "property"
)

type javaScriptExtractor struct {
	parser *sitter.Parser
}

func newJavaScriptExtractor() declarationExtractor {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())
	return &javaScriptExtractor{parser: parser}
}

func (extractor *javaScriptExtractor) SupportedExtensions() []string {
	return []string{javaScriptFileExtension}
}

// CollectDeclarations walks the syntax tree and returns function, class, and
// method declarations. Method names are qualified with their class names.
func (extractor *javaScriptExtractor) CollectDeclarations(_ string, fileContent []byte) ([]types.DeclarationEntry, error) {
	tree := extractor.parser.Parse(nil, fileContent)
	if tree == nil {
		return nil, nil
	}
	var entries []types.DeclarationEntry
	collectJavaScriptDeclarations(tree.RootNode(), fileContent, nil, &entries)
	return entries, nil
}

func collectJavaScriptDeclarations(node *sitter.Node, fileContent []byte, classStack []string, entries *[]types.DeclarationEntry) {
	if node == nil {
		return
	}
	switch node.Type() {
	case javaScriptFunctionNodeType, javaScriptGeneratorNodeType:
		if name := javaScriptNodeName(node, fileContent, javaScriptNameField); name != "" {
			*entries = append(*entries, types.DeclarationEntry{
				Kind: declarationKindFunction,
				Name: qualifyJavaScriptName(classStack, name),
			})
		}
	case javaScriptClassNodeType:
		if name := javaScriptNodeName(node, fileContent, javaScriptNameField); name != "" {
			*entries = append(*entries, types.DeclarationEntry{
				Kind: declarationKindClass,
				Name: qualifyJavaScriptName(classStack, name),
			})
			classStack = append(classStack, name)
		}
	case javaScriptMethodNodeType:
		if name := javaScriptMethodName(node, fileContent); name != "" {
			*entries = append(*entries, types.DeclarationEntry{
				Kind: declarationKindMethod,
				Name: qualifyJavaScriptName(classStack, name),
			})
		}
	}
	for childIndex := 0; childIndex < int(node.ChildCount()); childIndex++ {
		collectJavaScriptDeclarations(node.Child(childIndex), fileContent, classStack, entries)
	}
}

func javaScriptNodeName(node *sitter.Node, fileContent []byte, fieldName string) string {
	fieldNode := node.ChildByFieldName(fieldName)
	if fieldNode == nil {
		return ""
	}
	return strings.TrimSpace(string(fileContent[fieldNode.StartByte():fieldNode.EndByte()]))
}

// javaScriptMethodName reads the method name from a method_definition node.
// Grammar revisions expose it under either the name or the property field.
func javaScriptMethodName(node *sitter.Node, fileContent []byte) string {
	if name := javaScriptNodeName(node, fileContent, javaScriptNameField); name != "" {
		return name
	}
	return javaScriptNodeName(node, fileContent, javaScriptPropertyField)
}

func qualifyJavaScriptName(classStack []string, name string) string {
	if len(classStack) == 0 {
		return name
	}
	return strings.Join(classStack, ".") + "." + name
}
