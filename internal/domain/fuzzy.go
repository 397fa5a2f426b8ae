package domain

// StringScorer is the approximate string similarity capability used by the
// keyword matcher, the list-all detector and the equipment resolver. All
// scores are symmetric, case-insensitive and range 0-100.
type StringScorer interface {
	// Ratio is the normalized edit-distance similarity of two strings.
	Ratio(a, b string) int
	// PartialRatio is the best Ratio between the shorter string and any
	// equally long substring of the longer one.
	PartialRatio(a, b string) int
	// TokenSetRatio compares the token sets of both strings, ignoring
	// token order and duplication.
	TokenSetRatio(a, b string) int
}
