package poker

import (
	"fmt"

	"handeval/pkg/deck"
)

// Classification is the result of classifying a hand
// Each implementation carries exactly the ranks that break ties within its category,
// most significant first.
type Classification interface {
	Category() Category
	TieBreak() []deck.Rank
	String() string
}

// HighCardHand is five unrelated cards
type HighCardHand struct {
	Ranks [HandSize]deck.Rank // descending
}

// Category returns HighCard
func (HighCardHand) Category() Category { return HighCard }

// TieBreak returns all five ranks, highest first
func (h HighCardHand) TieBreak() []deck.Rank { return h.Ranks[:] }

func (h HighCardHand) String() string {
	return fmt.Sprintf("High card, %s", h.Ranks[0].Name())
}

// OnePairHand is a single pair and three kickers
type OnePairHand struct {
	Pair    deck.Rank
	Kickers [3]deck.Rank // descending
}

// Category returns OnePair
func (OnePairHand) Category() Category { return OnePair }

// TieBreak returns the pair followed by the kickers
func (h OnePairHand) TieBreak() []deck.Rank {
	return []deck.Rank{h.Pair, h.Kickers[0], h.Kickers[1], h.Kickers[2]}
}

func (h OnePairHand) String() string {
	return fmt.Sprintf("Pair of %s", h.Pair.Plural())
}

// TwoPairHand is two pairs and a kicker
type TwoPairHand struct {
	High   deck.Rank
	Low    deck.Rank
	Kicker deck.Rank
}

// Category returns TwoPair
func (TwoPairHand) Category() Category { return TwoPair }

// TieBreak returns the higher pair, the lower pair, then the kicker
func (h TwoPairHand) TieBreak() []deck.Rank {
	return []deck.Rank{h.High, h.Low, h.Kicker}
}

func (h TwoPairHand) String() string {
	return fmt.Sprintf("Two pair, %s and %s", h.High.Plural(), h.Low.Plural())
}

// ThreeOfAKindHand is trips and two kickers
type ThreeOfAKindHand struct {
	Trips   deck.Rank
	Kickers [2]deck.Rank // descending
}

// Category returns ThreeOfAKind
func (ThreeOfAKindHand) Category() Category { return ThreeOfAKind }

// TieBreak returns the trips followed by the kickers
func (h ThreeOfAKindHand) TieBreak() []deck.Rank {
	return []deck.Rank{h.Trips, h.Kickers[0], h.Kickers[1]}
}

func (h ThreeOfAKindHand) String() string {
	return fmt.Sprintf("Three of a kind, %s", h.Trips.Plural())
}

// StraightHand is five consecutive ranks of mixed suits
type StraightHand struct {
	High deck.Rank // Five for the wheel
}

// Category returns Straight
func (StraightHand) Category() Category { return Straight }

// TieBreak returns the top of the run
func (h StraightHand) TieBreak() []deck.Rank { return []deck.Rank{h.High} }

func (h StraightHand) String() string {
	return fmt.Sprintf("Straight, %s high", h.High.Name())
}

// FlushHand is five cards of one suit that do not form a straight
type FlushHand struct {
	Ranks [HandSize]deck.Rank // descending
}

// Category returns Flush
func (FlushHand) Category() Category { return Flush }

// TieBreak returns all five ranks, highest first
func (h FlushHand) TieBreak() []deck.Rank { return h.Ranks[:] }

func (h FlushHand) String() string {
	return fmt.Sprintf("Flush, %s high", h.Ranks[0].Name())
}

// FullHouseHand is trips and a pair
type FullHouseHand struct {
	Trips deck.Rank
	Pair  deck.Rank
}

// Category returns FullHouse
func (FullHouseHand) Category() Category { return FullHouse }

// TieBreak returns the trips then the pair
func (h FullHouseHand) TieBreak() []deck.Rank { return []deck.Rank{h.Trips, h.Pair} }

func (h FullHouseHand) String() string {
	return fmt.Sprintf("Full house, %s full of %s", h.Trips.Plural(), h.Pair.Plural())
}

// FourOfAKindHand is quads and a kicker
type FourOfAKindHand struct {
	Quads  deck.Rank
	Kicker deck.Rank
}

// Category returns FourOfAKind
func (FourOfAKindHand) Category() Category { return FourOfAKind }

// TieBreak returns the quads then the kicker
func (h FourOfAKindHand) TieBreak() []deck.Rank { return []deck.Rank{h.Quads, h.Kicker} }

func (h FourOfAKindHand) String() string {
	return fmt.Sprintf("Four of a kind, %s", h.Quads.Plural())
}

// StraightFlushHand is a straight where every card shares a suit
type StraightFlushHand struct {
	High deck.Rank // Five for the steel wheel
}

// Category returns StraightFlush
func (StraightFlushHand) Category() Category { return StraightFlush }

// TieBreak returns the top of the run
func (h StraightFlushHand) TieBreak() []deck.Rank { return []deck.Rank{h.High} }

// IsRoyal returns true for the ace-high straight flush
func (h StraightFlushHand) IsRoyal() bool {
	return h.High == deck.Ace
}

func (h StraightFlushHand) String() string {
	if h.IsRoyal() {
		return "Royal flush"
	}

	return fmt.Sprintf("Straight flush, %s high", h.High.Name())
}
