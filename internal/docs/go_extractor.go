package docs

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/temirov/snapmd/internal/types"
)

type goExtractor struct{}

func newGoExtractor() declarationExtractor {
	return &goExtractor{}
}

func (extractor *goExtractor) SupportedExtensions() []string {
	return []string{goFileExtension}
}

// CollectDeclarations parses the file and returns its package clause together
// with every exported top-level function, method, and type. Names are
// qualified with the package name; each entry carries the first line of its
// doc comment when one exists.
func (extractor *goExtractor) CollectDeclarations(filePath string, fileContent []byte) ([]types.DeclarationEntry, error) {
	fileSet := token.NewFileSet()
	fileAST, parseError := parser.ParseFile(fileSet, filePath, fileContent, parser.ParseComments)
	if parseError != nil {
		return nil, parseError
	}

	packageName := fileAST.Name.Name
	entries := []types.DeclarationEntry{{
		Kind: declarationKindPackage,
		Name: packageName,
		Doc:  firstCommentLine(fileAST.Doc),
	}}

	for _, declaration := range fileAST.Decls {
		switch typedDeclaration := declaration.(type) {
		case *ast.FuncDecl:
			if !typedDeclaration.Name.IsExported() {
				continue
			}
			entryKind := declarationKindFunction
			entryName := packageName + "." + typedDeclaration.Name.Name
			if typedDeclaration.Recv != nil && len(typedDeclaration.Recv.List) > 0 {
				entryKind = declarationKindMethod
				if receiverName := receiverTypeName(typedDeclaration.Recv.List[0].Type); receiverName != "" {
					entryName = packageName + "." + receiverName + "." + typedDeclaration.Name.Name
				}
			}
			entries = append(entries, types.DeclarationEntry{
				Kind: entryKind,
				Name: entryName,
				Doc:  firstCommentLine(typedDeclaration.Doc),
			})
		case *ast.GenDecl:
			if typedDeclaration.Tok != token.TYPE {
				continue
			}
			for _, specification := range typedDeclaration.Specs {
				typeSpecification, isTypeSpecification := specification.(*ast.TypeSpec)
				if !isTypeSpecification || !typeSpecification.Name.IsExported() {
					continue
				}
				documentation := typeSpecification.Doc
				if documentation == nil {
					documentation = typedDeclaration.Doc
				}
				entries = append(entries, types.DeclarationEntry{
					Kind: declarationKindType,
					Name: packageName + "." + typeSpecification.Name.Name,
					Doc:  firstCommentLine(documentation),
				})
			}
		}
	}

	return entries, nil
}

// receiverTypeName resolves the named type of a method receiver, unwrapping
// pointers and generic instantiations.
func receiverTypeName(expression ast.Expr) string {
	switch typedExpression := expression.(type) {
	case *ast.Ident:
		return typedExpression.Name
	case *ast.StarExpr:
		return receiverTypeName(typedExpression.X)
	case *ast.IndexExpr:
		return receiverTypeName(typedExpression.X)
	case *ast.IndexListExpr:
		return receiverTypeName(typedExpression.X)
	default:
		return ""
	}
}

func firstCommentLine(commentGroup *ast.CommentGroup) string {
	if commentGroup == nil {
		return ""
	}
	for _, line := range strings.Split(commentGroup.Text(), "\n") {
		trimmedLine := strings.TrimSpace(line)
		if trimmedLine != "" {
			return trimmedLine
		}
	}
	return ""
}
