package textstat

import "github.com/rivo/uniseg"

// CharacterCount returns the number of user-perceived characters across the
// given texts. DeepL bills per character, so the count uses grapheme
// clusters rather than bytes or runes.
func CharacterCount(texts []string) int {
	total := 0
	for _, text := range texts {
		total += uniseg.GraphemeClusterCount(text)
	}
	return total
}
