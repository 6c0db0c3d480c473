package poker

import "handeval/pkg/deck"

// wheel is the five-high straight, where the ace plays low
var wheel = [HandSize]deck.Rank{deck.Two, deck.Three, deck.Four, deck.Five, deck.Ace}

// checkStraight returns the top rank of the straight formed by the cards
// cards must be sorted ascending by rank. Zero is returned if the cards are not a straight.
func checkStraight(cards []deck.Card) deck.Rank {
	if len(cards) != HandSize {
		return 0
	}

	if isWheel(cards) {
		return deck.Five
	}

	for i := 1; i < len(cards); i++ {
		if cards[i].Rank != cards[i-1].Rank+1 {
			return 0
		}
	}

	return cards[len(cards)-1].Rank
}

// isWheel checks for A-2-3-4-5 explicitly
// the ace sorts last, so a run check would see a gap between five and ace
func isWheel(cards []deck.Card) bool {
	for i, card := range cards {
		if card.Rank != wheel[i] {
			return false
		}
	}

	return true
}
