package core

import (
	"strings"
)

// RenderGroup formats a group of texts as "[a, b, c]" for display.
func RenderGroup(texts []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range texts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t)
	}
	b.WriteByte(']')
	return b.String()
}
