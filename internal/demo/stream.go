package demo

import (
	"fmt"

	"github.com/aschepis/chainkit/chain"
)

// ShowStream prints chunks as they arrive, then a trailing newline. It
// returns the assembled text alongside any stream error.
func ShowStream(label string, s chain.Stream) (string, error) {
	defer s.Close()

	fmt.Println(labelStyle.Render(label + ":"))
	var text string
	for s.Next() {
		chunk := s.Chunk()
		text += chunk
		fmt.Print(resultStyle.Render(chunk))
	}
	fmt.Println()
	fmt.Println()
	return text, s.Err()
}
