package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Usage Errors (E200-E219)
	// ============================================

	"E200": {
		Category: CategoryUsage,
		Message:  "Null argument not allowed",
		Detail:   "Element tags and component definitions must be non-empty. Pass a tag name like \"div\" or a registered *ComponentDef.",
		DocURL:   "https://loom-ui.dev/docs/errors/E200",
	},
	"E201": {
		Category: CategoryUsage,
		Message:  "Illegal construction argument",
		Detail:   "The construction entry points accept attributes, event listeners, nodes, and primitive child values. Anything else is rejected.",
		DocURL:   "https://loom-ui.dev/docs/errors/E201",
	},
	"E202": {
		Category: CategoryUsage,
		Message:  "Unsupported child type",
		Detail:   "Children must be Nodes, strings, booleans, or numbers. Nested slices are flattened; nil entries are skipped.",
		DocURL:   "https://loom-ui.dev/docs/errors/E202",
	},
	"E203": {
		Category: CategoryUsage,
		Message:  "Node belongs to a different arena",
		Detail:   "Nodes can only be attached to trees built in the same arena. Share one arena between the contexts involved in a pass.",
		DocURL:   "https://loom-ui.dev/docs/errors/E203",
	},
	"E204": {
		Category: CategoryUsage,
		Message:  "Raw HTML is not supported on component placeholders",
		Detail:   "A component placeholder has no raw-HTML concept; its content is decided by the component's own render logic.",
		DocURL:   "https://loom-ui.dev/docs/errors/E204",
	},
	"E205": {
		Category: CategoryUsage,
		Message:  "No raw content set",
		Detail:   "InnerHTML can only be read from a node built via SetInnerHTML, not one built via the child API.",
		DocURL:   "https://loom-ui.dev/docs/errors/E205",
	},
	"E206": {
		Category: CategoryUsage,
		Message:  "Operation not supported for this node kind",
		Detail:   "Element mutation methods apply to element and component nodes only.",
		DocURL:   "https://loom-ui.dev/docs/errors/E206",
	},

	// ============================================
	// Structure Errors (E220-E239)
	// ============================================

	"E220": {
		Category: CategoryStructure,
		Message:  "Child index out of range",
		DocURL:   "https://loom-ui.dev/docs/errors/E220",
	},
	"E221": {
		Category: CategoryStructure,
		Message:  "Node is not a current child",
		Detail:   "The reference node must be attached to this parent before it can anchor an insert, remove, or replace.",
		DocURL:   "https://loom-ui.dev/docs/errors/E221",
	},
	"E222": {
		Category: CategoryStructure,
		Message:  "Raw content is set; child operations are disabled",
		Detail:   "Call Empty() to clear raw content before using the child API.",
		DocURL:   "https://loom-ui.dev/docs/errors/E222",
	},
	"E223": {
		Category: CategoryStructure,
		Message:  "Children present; raw content is disabled",
		Detail:   "Call Empty() to detach existing children before using SetInnerHTML.",
		DocURL:   "https://loom-ui.dev/docs/errors/E223",
	},

	// ============================================
	// Identity Errors (E240-E249)
	// ============================================

	"E240": {
		Category: CategoryIdentity,
		Message:  "Reference already set on node",
		Detail:   "A node's reference id is settable at most once and cannot be changed or cleared.",
		DocURL:   "https://loom-ui.dev/docs/errors/E240",
	},
	"E241": {
		Category: CategoryIdentity,
		Message:  "Duplicate reference id in render pass",
		Detail:   "Reference ids are unique per render context, across the whole pass rather than per subtree.",
		DocURL:   "https://loom-ui.dev/docs/errors/E241",
	},
	"E242": {
		Category: CategoryIdentity,
		Message:  "Empty reference id",
		DocURL:   "https://loom-ui.dev/docs/errors/E242",
	},

	// ============================================
	// Config Errors (E500-E519)
	// ============================================

	"E500": {
		Category: CategoryConfig,
		Message:  "Failed to read configuration file",
		DocURL:   "https://loom-ui.dev/docs/errors/E500",
	},
	"E501": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		DocURL:   "https://loom-ui.dev/docs/errors/E501",
	},

	// ============================================
	// Protocol Errors (E520-E539)
	// ============================================

	"E520": {
		Category: CategoryProtocol,
		Message:  "Snapshot decode failed",
		DocURL:   "https://loom-ui.dev/docs/errors/E520",
	},
	"E521": {
		Category: CategoryProtocol,
		Message:  "Unsupported protocol version",
		DocURL:   "https://loom-ui.dev/docs/errors/E521",
	},
	"E522": {
		Category: CategoryProtocol,
		Message:  "Unexpected frame type",
		DocURL:   "https://loom-ui.dev/docs/errors/E522",
	},

	// ============================================
	// CLI Errors (E540-E549)
	// ============================================

	"E540": {
		Category: CategoryCLI,
		Message:  "Export failed",
		DocURL:   "https://loom-ui.dev/docs/errors/E540",
	},
	"E541": {
		Category: CategoryCLI,
		Message:  "Publish failed",
		DocURL:   "https://loom-ui.dev/docs/errors/E541",
	},
}
