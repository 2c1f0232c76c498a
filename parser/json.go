package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aschepis/chainkit/chain"
)

// jsonParser decodes a JSON object from model output.
type jsonParser struct{}

// JSON returns a parser that decodes model output into a chain.Values map.
// Markdown code fences around the object are tolerated, since models often
// emit them even when asked not to.
func JSON() chain.Runnable { return jsonParser{} }

func (jsonParser) Name() string { return "json_parser" }

func (jsonParser) Invoke(_ context.Context, input any) (any, error) {
	text, err := TextOf(input)
	if err != nil {
		return nil, err
	}

	var out chain.Values
	if err := json.Unmarshal([]byte(stripFences(text)), &out); err != nil {
		return nil, fmt.Errorf("invalid JSON in model output: %w", err)
	}
	return out, nil
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag, and falls back to slicing from the first brace when the model
// wrapped the object in prose.
func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)

	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		return strings.TrimSpace(trimmed)
	}

	if !strings.HasPrefix(trimmed, "{") {
		start := strings.Index(trimmed, "{")
		end := strings.LastIndex(trimmed, "}")
		if start >= 0 && end > start {
			return trimmed[start : end+1]
		}
	}
	return trimmed
}
