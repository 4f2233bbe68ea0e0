package contract

// ToolRequest is a single tool invocation requested by the model.
type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

// ToolResult is what a tool invocation hands back to the agent runtime.
// Tool failures are carried in Error as a human-readable message; a tool
// never raises outward.
type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}
