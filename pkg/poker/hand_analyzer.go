package poker

import (
	"fmt"
	"sort"

	"handeval/pkg/deck"
)

// rankGroup is every card of a single rank
type rankGroup struct {
	rank  deck.Rank
	count int
}

// handAnalyzer holds the intermediate results of classifying a hand
type handAnalyzer struct {
	cards    []deck.Card // ascending by rank
	groups   []rankGroup // largest group first, then highest rank first
	flush    bool
	straight deck.Rank // top rank of the straight, zero if none
}

// analyze will group the cards by rank and check for a flush and a straight
func analyze(h Hand) *handAnalyzer {
	a := &handAnalyzer{
		cards: h.Sorted(),
	}

	a.groups = groupByRank(a.cards)
	a.flush = checkFlush(a.cards)

	// a straight needs five distinct ranks
	if len(a.groups) == HandSize {
		a.straight = checkStraight(a.cards)
	}

	return a
}

func groupByRank(cards []deck.Card) []rankGroup {
	counts := make(map[deck.Rank]int, len(cards))
	for _, card := range cards {
		counts[card.Rank]++
	}

	groups := make([]rankGroup, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, rankGroup{rank: rank, count: count})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}

		return groups[i].rank > groups[j].rank
	})

	return groups
}

func checkFlush(cards []deck.Card) bool {
	for _, card := range cards[1:] {
		if card.Suit != cards[0].Suit {
			return false
		}
	}

	return true
}

// shape returns the group sizes, largest first, i.e., [3 2] for a full house
func (a *handAnalyzer) shape() []int {
	shape := make([]int, len(a.groups))
	for i, g := range a.groups {
		shape[i] = g.count
	}

	return shape
}

// rank returns the rank of the i-th group
func (a *handAnalyzer) rank(i int) deck.Rank {
	return a.groups[i].rank
}

// descending returns every rank from highest to lowest
// Only meaningful when no two cards share a rank.
func (a *handAnalyzer) descending() [HandSize]deck.Rank {
	var ranks [HandSize]deck.Rank
	for i := range ranks {
		ranks[i] = a.rank(i)
	}

	return ranks
}

func (a *handAnalyzer) classify() Classification {
	shape := a.shape()

	switch {
	case shape[0] == 4:
		return FourOfAKindHand{Quads: a.rank(0), Kicker: a.rank(1)}
	case shape[0] == 3 && shape[1] == 2:
		return FullHouseHand{Trips: a.rank(0), Pair: a.rank(1)}
	case shape[0] == 3:
		return ThreeOfAKindHand{Trips: a.rank(0), Kickers: [2]deck.Rank{a.rank(1), a.rank(2)}}
	case shape[0] == 2 && shape[1] == 2:
		return TwoPairHand{High: a.rank(0), Low: a.rank(1), Kicker: a.rank(2)}
	case shape[0] == 2:
		return OnePairHand{Pair: a.rank(0), Kickers: [3]deck.Rank{a.rank(1), a.rank(2), a.rank(3)}}
	case len(shape) != HandSize:
		panic(fmt.Sprintf("unexpected hand shape: %v", shape))
	}

	switch {
	case a.straight > 0 && a.flush:
		return StraightFlushHand{High: a.straight}
	case a.flush:
		return FlushHand{Ranks: a.descending()}
	case a.straight > 0:
		return StraightHand{High: a.straight}
	default:
		return HighCardHand{Ranks: a.descending()}
	}
}

// Classify returns the category of the hand along with its tie-break ranks
func (h Hand) Classify() Classification {
	return analyze(h).classify()
}

// Shape returns the sizes of the rank groups in the hand, largest first
func (h Hand) Shape() []int {
	return analyze(h).shape()
}
