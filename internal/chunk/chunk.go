// Package chunk splits oversized extracted texts into bounded pieces,
// preferring to cut at word boundaries.
package chunk

// Split breaks text into pieces of at most maxSize characters. The cut is
// moved back to the nearest space inside the window when one exists strictly
// after the piece start; otherwise the piece ends at the hard limit, possibly
// mid-word. A space consumed at a cut point is not reinserted, so reassembly
// is equivalent to the original modulo single separating spaces.
//
// Sizes are measured in characters, not bytes, so a cut never lands inside a
// multi-byte sequence.
func Split(text string, maxSize int) []string {
	runes := []rune(text)
	if len(runes) <= maxSize {
		return []string{text}
	}

	var chunks []string
	start := 0

	for start < len(runes) {
		end := start + maxSize
		if end > len(runes) {
			end = len(runes)
		}

		// Prefer a word boundary when this is not the final piece.
		if end < len(runes) {
			for i := end - 1; i > start; i-- {
				if runes[i] == ' ' {
					end = i
					break
				}
			}
		}

		chunks = append(chunks, string(runes[start:end]))
		start = end

		// Skip the space we cut at.
		if start < len(runes) && runes[start] == ' ' {
			start++
		}
	}

	return chunks
}
