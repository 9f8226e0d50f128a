package serve

import (
	"encoding/json"

	"github.com/praetorian-inc/choice/pkg/ranges"
)

// Request represents an incoming NDJSON request
type Request struct {
	Type    string          `json:"type"`    // "parse" | "contains" | "expand" | "close"
	Payload json.RawMessage `json:"payload"`
}

// ParsePayload is the payload for "parse" requests
type ParsePayload struct {
	Input string `json:"input"`
}

// ContainsPayload is the payload for "contains" requests
type ContainsPayload struct {
	Input string `json:"input"`
	Items []int  `json:"items"`
}

// ExpandPayload is the payload for "expand" requests.
// Limit caps how many indices are returned; zero means DefaultExpandLimit
// and values above MaxExpandLimit are lowered to it.
type ExpandPayload struct {
	Input string `json:"input"`
	Limit int    `json:"limit"`
}

// Response represents an outgoing NDJSON response
type Response struct {
	Success bool            `json:"success"`
	Type    string          `json:"type"`              // request type, "ready", "decode" or "unknown"
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Details *ErrorDetails   `json:"details,omitempty"`
}

// ErrorDetails locates a malformed token for "parse", "contains" and
// "expand" failures.
type ErrorDetails struct {
	Kind   string `json:"kind"`
	Token  string `json:"token"`
	Offset int    `json:"offset"`
}

// ReadyData is the data field for "ready" responses
type ReadyData struct {
	Version string `json:"version"`
}

// ParseData is the data field for "parse" responses
type ParseData struct {
	Ranges    []ranges.Range `json:"ranges"`
	Canonical string         `json:"canonical"`
	Count     int            `json:"count"`
}

// ContainsData is the data field for "contains" responses.
// Results[i] answers Items[i] of the request.
type ContainsData struct {
	Results []bool `json:"results"`
}

// ExpandData is the data field for "expand" responses
type ExpandData struct {
	Items     []int `json:"items"`
	Truncated bool  `json:"truncated"`
}
