package blogs

import "strings"

// wordsPerMinute is the reading speed assumed for the readTime estimate.
const wordsPerMinute = 200

// ReadTime estimates reading minutes for content, never less than one.
func ReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
