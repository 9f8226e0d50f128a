//go:build wasm

package main

import (
	"encoding/json"
	"syscall/js"
	"testing"
)

// TestParse tests parsing a valid selection string
func TestParse(t *testing.T) {
	result := parse(js.Value{}, []js.Value{js.ValueOf("6-8 1 5 3")})

	jsonStr, ok := result.(string)
	if !ok {
		t.Fatalf("Expected JSON string result, got %T: %v", result, result)
	}

	var got parseResult
	if err := json.Unmarshal([]byte(jsonStr), &got); err != nil {
		t.Fatalf("Failed to unmarshal result: %v", err)
	}

	if got.Canonical != "1 3 5-8" {
		t.Errorf("Canonical = %q, want %q", got.Canonical, "1 3 5-8")
	}
	if got.Count != 6 {
		t.Errorf("Count = %d, want 6", got.Count)
	}
	if len(got.Ranges) != 3 {
		t.Errorf("len(Ranges) = %d, want 3", len(got.Ranges))
	}
}

// TestParseError tests that malformed input returns error details
func TestParseError(t *testing.T) {
	result := parse(js.Value{}, []js.Value{js.ValueOf("1 0")})

	resultMap, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected map result, got %T", result)
	}

	if resultMap["kind"] != "non_positive_index" {
		t.Errorf("kind = %v, want non_positive_index", resultMap["kind"])
	}
	if resultMap["token"] != "0" {
		t.Errorf("token = %v, want 0", resultMap["token"])
	}
	if resultMap["offset"] != 2 {
		t.Errorf("offset = %v, want 2", resultMap["offset"])
	}
}

// TestParseMissingArgs tests calling without arguments
func TestParseMissingArgs(t *testing.T) {
	result := parse(js.Value{}, []js.Value{})

	resultMap, ok := result.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected map result, got %T", result)
	}
	if _, hasError := resultMap["error"]; !hasError {
		t.Error("Expected error for missing arguments")
	}
}

// TestContains tests membership queries
func TestContains(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{7, true},
		{4, false},
		{1, true},
	}

	for _, tt := range tests {
		result := contains(js.Value{}, []js.Value{js.ValueOf("1 3 5 6-8"), js.ValueOf(tt.n)})
		got, ok := result.(bool)
		if !ok {
			t.Fatalf("Expected bool result, got %T", result)
		}
		if got != tt.want {
			t.Errorf("contains(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

// TestContainsNonNumberIndex tests that a non-number index returns an error object
func TestContainsNonNumberIndex(t *testing.T) {
	tests := []struct {
		name  string
		index js.Value
	}{
		{"string", js.ValueOf("7")},
		{"undefined", js.Undefined()},
		{"null", js.Null()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := contains(js.Value{}, []js.Value{js.ValueOf("1 3 5 6-8"), tt.index})
			resultMap, ok := result.(map[string]interface{})
			if !ok {
				t.Fatalf("Expected error map, got %T: %v", result, result)
			}
			if resultMap["error"] != "index must be a number" {
				t.Errorf("error = %v, want %q", resultMap["error"], "index must be a number")
			}
		})
	}
}
