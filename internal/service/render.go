package service

import "github.com/pageza/pavilion/backend/internal/types"

// MaxBodyLength is the longest body a renderer accepts, in characters
const MaxBodyLength = 1024

// Render prepares sections for display: bodies are cut to MaxBodyLength
// characters and empty bodies become EmptyMenu. An empty list becomes a single
// "no menu data" section.
func Render(sections []types.Section) []types.Section {
	if len(sections) == 0 {
		return []types.Section{{Title: NoMenuTitle, Body: MsgNoMenu}}
	}

	out := make([]types.Section, len(sections))
	for i, section := range sections {
		out[i] = types.Section{Title: section.Title, Body: Truncate(section.Body)}
	}
	return out
}

// Truncate cuts body to MaxBodyLength characters
func Truncate(body string) string {
	runes := []rune(body)
	if len(runes) > MaxBodyLength {
		runes = runes[:MaxBodyLength]
	}
	if len(runes) == 0 {
		return EmptyMenu
	}
	return string(runes)
}
