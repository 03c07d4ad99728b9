package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Definition errors (D001-D099)

	"D001": {
		Category:   CategoryDefinition,
		Message:    "Missing component definition",
		Detail:     "A nil definition was passed where a component definition was expected.",
		Suggestion: "Pass a *defcomp.Definition or a render function.",
	},
	"D002": {
		Category:   CategoryDefinition,
		Message:    "Missing render function",
		Detail:     "A component definition must provide getElement, or be a render function itself.",
		Suggestion: "Add getElement: func(my *defcomp.Instance) *vdom.VNode { ... }",
	},
	"D003": {
		Category:   CategoryDefinition,
		Message:    "Lifecycle method has the wrong type",
		Detail:     "Lifecycle methods are called by the host and must match their hook signature.",
		Suggestion: "Check the hook signature in the defcomp package documentation.",
	},
	"D004": {
		Category:   CategoryDefinition,
		Message:    "setupComponent must be a function",
		Detail:     "setupComponent runs once per instance after methods are bound.",
		Suggestion: "Use setupComponent: func(my *defcomp.Instance) { ... }",
	},
	"D005": {
		Category:   CategoryDefinition,
		Message:    "getNextState must be a function",
		Detail:     "getNextState derives state from incoming props before an update.",
		Suggestion: "Use getNextState: func(my *defcomp.Instance, next vdom.Props) vdom.State { ... }",
	},
	"D006": {
		Category:   CategoryDefinition,
		Message:    "Unable to bind property",
		Detail:     "Properties that are not statics or lifecycle hooks are bound as instance methods and must be functions.",
		Suggestion: "Use a defcomp.Method or func(my *defcomp.Instance), or move data into defaultProps.",
	},
	"D007": {
		Category:   CategoryDefinition,
		Message:    "Definition cannot be cached by identity",
		Detail:     "The element factory caches adapted components by definition pointer.",
		Suggestion: "Pass &defcomp.Definition{...}, or call defcomp.Adapt once and pass the result.",
	},

	// Render errors (R001-R099)

	"R001": {
		Category:   CategoryRender,
		Message:    "Invalid element type",
		Detail:     "The host cannot construct an element from this value.",
		Suggestion: "Use a tag name, a component type or a function component.",
	},

	// Config errors (C001-C099)

	"C001": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration file",
		Detail:     "defkit.json could not be read or parsed.",
		Suggestion: "Check that defkit.json is valid JSON.",
	},
	"C002": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration value",
		Suggestion: "Run defkit with --help to see accepted values.",
	},

	// CLI errors (X001-X099)

	"X001": {
		Category:   CategoryCLI,
		Message:    "Unknown component",
		Suggestion: "Run defkit render --list to see available components.",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for a code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
