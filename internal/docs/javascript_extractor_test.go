//go:build cgo

package docs_test

import (
	"testing"

	"github.com/temirov/snapmd/internal/docs"
	"github.com/temirov/snapmd/internal/types"
)

const javaScriptSourceFixture = `function topLevel() {}

class Greeter {
  greet(name) {
    return "hi " + name;
  }
  static create() {
    return new Greeter();
  }
}

function* pager() {
  yield 1;
}
`

// TestCollectFromJavaScriptFile verifies function, class, and method
// extraction with class-qualified method names.
func TestCollectFromJavaScriptFile(testingHandle *testing.T) {
	filePath := writeSourceFile(testingHandle, "greeter.js", javaScriptSourceFixture)

	collected, collectError := docs.NewCollector().CollectFromFile(filePath)
	if collectError != nil {
		testingHandle.Fatalf("CollectFromFile error: %v", collectError)
	}

	assertDeclarations(testingHandle, collected, []types.DeclarationEntry{
		{Kind: "function", Name: "topLevel"},
		{Kind: "class", Name: "Greeter"},
		{Kind: "method", Name: "Greeter.greet"},
		{Kind: "method", Name: "Greeter.create"},
		{Kind: "function", Name: "pager"},
	})
}
