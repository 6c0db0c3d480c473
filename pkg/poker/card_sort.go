package poker

import "handeval/pkg/deck"

// sortByRank orders cards from lowest to highest rank
// Suit is ignored, so a stable sort keeps equal ranks in input order.
type sortByRank []deck.Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i].Compare(s[j]) < 0
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
