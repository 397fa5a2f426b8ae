package nlu

import "strings"

// Normalize canonicalizes an utterance for matching: lowercase, punctuation
// stripped to spaces, elongated letter runs collapsed, whitespace collapsed.
// Normalizing an already normalized string is a no-op.
func Normalize(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))

	var b strings.Builder
	b.Grow(len(t))
	for _, r := range t {
		if isAllowedRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	collapsed := collapseRepeatedRunes(b.String())
	return strings.Join(strings.Fields(collapsed), " ")
}

// isAllowedRune keeps digits, ASCII letters, Latin accented letters
// (U+00C0..U+017F) and whitespace.
func isAllowedRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 0x00C0 && r <= 0x017F:
		return true
	case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		return true
	}
	return false
}

// collapseRepeatedRunes shrinks runs of three or more identical runes to a
// single rune, so "promooo" and "promo" match the same keywords.
func collapseRepeatedRunes(s string) string {
	runes := []rune(s)

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		if j-i >= 3 {
			b.WriteRune(runes[i])
		} else {
			for k := i; k < j; k++ {
				b.WriteRune(runes[k])
			}
		}
		i = j
	}
	return b.String()
}
