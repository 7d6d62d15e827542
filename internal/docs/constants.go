package docs

const (
	goFileExtension         = ".go"
	pythonFileExtension     = ".py"
	javaScriptFileExtension = ".js"

	declarationKindPackage  = "package"
	declarationKindFunction = "function"
	declarationKindMethod   = "method"
	declarationKindType     = "type"
	declarationKindClass    = "class"
)
