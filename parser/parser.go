package parser

import (
	"fmt"

	"github.com/aschepis/chainkit/llm"
)

// TextOf extracts the raw text from a parser input. Model steps produce
// *llm.Response; plain strings pass through.
func TextOf(input any) (string, error) {
	switch v := input.(type) {
	case string:
		return v, nil
	case *llm.Response:
		if v == nil {
			return "", fmt.Errorf("nil model response")
		}
		return v.Text, nil
	case llm.Message:
		return v.Text, nil
	default:
		return "", fmt.Errorf("cannot parse %T as model output", input)
	}
}
