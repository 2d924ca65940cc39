package errors

// registryEntry defines a registered error type.
type registryEntry struct {
	Category Category
	Message  string
	Detail   string
}

// Node construction and rendering codes.
const (
	CodeMissingContent  = "H001"
	CodeMissingTag      = "H002"
	CodeMissingChildren = "H003"
	CodeNotImplemented  = "H004"
)

// Document decoding codes.
const (
	CodeDocumentRead      = "H020"
	CodeDocumentSyntax    = "H021"
	CodeDocumentShape     = "H022"
	CodeDocumentUnknown   = "H023"
	CodeDocumentAmbiguous = "H024"
	CodeDocumentNode      = "H025"
)

// Configuration codes.
const (
	CodeConfigRead     = "H040"
	CodeConfigInvalid  = "H041"
	CodeConfigNotFound = "H042"
)

// CLI codes.
const (
	CodeOutputWrite  = "H060"
	CodeMetricsWrite = "H061"
)

// registry maps error codes to their templates.
var registry = map[string]registryEntry{
	// ============================================
	// Node Errors (H001-H019)
	// ============================================

	CodeMissingContent: {
		Category: CategoryValidation,
		Message:  "Leaf node must have either a tag or a value",
		Detail:   "A leaf with no tag renders its value as raw text, and a leaf with a tag but no value renders an opening tag only. With neither there is nothing to render.",
	},
	CodeMissingTag: {
		Category: CategoryValidation,
		Message:  "Parent node must have a tag",
		Detail:   "A parent wraps its children in an element, so the tag cannot be empty.",
	},
	CodeMissingChildren: {
		Category: CategoryValidation,
		Message:  "Parent node must have children",
		Detail:   "A parent needs at least one child node. Use a leaf for elements without children.",
	},
	CodeNotImplemented: {
		Category: CategoryRuntime,
		Message:  "Render not implemented",
		Detail:   "The base node only holds shared attributes. Build a Leaf or a Parent to render HTML.",
	},

	// ============================================
	// Document Errors (H020-H039)
	// ============================================

	CodeDocumentRead: {
		Category: CategoryDocument,
		Message:  "Failed to read tree document",
		Detail:   "The tree document could not be read from disk or stdin.",
	},
	CodeDocumentSyntax: {
		Category: CategoryDocument,
		Message:  "Invalid tree document syntax",
		Detail:   "The tree document is not valid YAML or JSON.",
	},
	CodeDocumentShape: {
		Category: CategoryDocument,
		Message:  "Unexpected value in tree document",
		Detail:   "Nodes are mappings with tag, value, props and children keys. Props is a mapping of names to scalars and children is a sequence.",
	},
	CodeDocumentUnknown: {
		Category: CategoryDocument,
		Message:  "Unknown key in tree document",
		Detail:   "Only tag, value, props and children are allowed on a node.",
	},
	CodeDocumentAmbiguous: {
		Category: CategoryDocument,
		Message:  "Node has both value and children",
		Detail:   "A node with children is a parent, which never carries a value.",
	},
	CodeDocumentNode: {
		Category: CategoryDocument,
		Message:  "Invalid node in tree document",
		Detail:   "The node could not be constructed.",
	},

	// ============================================
	// Config Errors (H040-H059)
	// ============================================

	CodeConfigRead: {
		Category: CategoryConfig,
		Message:  "Failed to read configuration",
		Detail:   "The htmlnode.json file could not be read or parsed.",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "A value in htmlnode.json is out of range.",
	},
	CodeConfigNotFound: {
		Category: CategoryConfig,
		Message:  "Configuration not found",
		Detail:   "No htmlnode.json was found in this directory or any parent.",
	},

	// ============================================
	// CLI Errors (H060-H079)
	// ============================================

	CodeOutputWrite: {
		Category: CategoryCLI,
		Message:  "Failed to write output",
		Detail:   "The rendered HTML could not be written.",
	},
	CodeMetricsWrite: {
		Category: CategoryCLI,
		Message:  "Failed to write metrics",
		Detail:   "The metrics textfile could not be written.",
	},
}
