package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/pagescope/core"
)

// JSONRenderer produces the analysis result as indented JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals result. The error variant becomes {"error": "..."}.
func (r *JSONRenderer) Render(result *core.AnalysisResult) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
