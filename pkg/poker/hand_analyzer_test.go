package poker

import (
	"testing"

	"handeval/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestHand_Classify(t *testing.T) {
	tests := []struct {
		cards string
		want  Classification
	}{
		{"2c,7d,9h,11s,13c", HighCardHand{Ranks: [5]deck.Rank{13, 11, 9, 7, 2}}},
		{"14c,2d,5h,8s,3c", HighCardHand{Ranks: [5]deck.Rank{14, 8, 5, 3, 2}}},
		{"5c,5d,9h,11s,2c", OnePairHand{Pair: 5, Kickers: [3]deck.Rank{11, 9, 2}}},
		{"14c,14d,13h,13s,2c", TwoPairHand{High: 14, Low: 13, Kicker: 2}},
		{"2c,12d,11h,12s,11c", TwoPairHand{High: 12, Low: 11, Kicker: 2}},
		{"7c,7d,7h,14s,3c", ThreeOfAKindHand{Trips: 7, Kickers: [2]deck.Rank{14, 3}}},
		{"2c,3d,4h,5s,6c", StraightHand{High: 6}},
		{"14c,2d,3h,4s,5c", StraightHand{High: 5}},
		{"10c,11d,12h,13s,14c", StraightHand{High: 14}},
		{"2h,4h,6h,8h,10h", FlushHand{Ranks: [5]deck.Rank{10, 8, 6, 4, 2}}},
		{"3c,3d,3h,9s,9c", FullHouseHand{Trips: 3, Pair: 9}},
		{"9c,9d,3h,3s,9h", FullHouseHand{Trips: 9, Pair: 3}},
		{"4c,4d,4h,4s,14c", FourOfAKindHand{Quads: 4, Kicker: 14}},
		{"14s,14d,14h,14c,2c", FourOfAKindHand{Quads: 14, Kicker: 2}},
		{"5d,6d,7d,8d,9d", StraightFlushHand{High: 9}},
		{"14s,2s,3s,4s,5s", StraightFlushHand{High: 5}},
		{"10s,11s,12s,13s,14s", StraightFlushHand{High: 14}},
	}

	for _, tt := range tests {
		got := MustHand(tt.cards).Classify()
		assert.Equal(t, tt.want, got, tt.cards)
		assert.Equal(t, tt.want.Category(), got.Category(), tt.cards)
	}
}

func TestHand_Shape(t *testing.T) {
	assert.Equal(t, []int{4, 1}, MustHand("4c,4d,4h,4s,14c").Shape())
	assert.Equal(t, []int{3, 2}, MustHand("3c,3d,3h,9s,9c").Shape())
	assert.Equal(t, []int{3, 1, 1}, MustHand("7c,7d,7h,14s,3c").Shape())
	assert.Equal(t, []int{2, 2, 1}, MustHand("14c,14d,13h,13s,2c").Shape())
	assert.Equal(t, []int{2, 1, 1, 1}, MustHand("5c,5d,9h,11s,2c").Shape())
	assert.Equal(t, []int{1, 1, 1, 1, 1}, MustHand("2c,7d,9h,11s,13c").Shape())
}

func TestClassification_String(t *testing.T) {
	tests := map[string]string{
		"2c,7d,9h,11s,13c":    "High card, king",
		"5c,5d,9h,11s,2c":     "Pair of fives",
		"14c,14d,13h,13s,2c":  "Two pair, aces and kings",
		"6c,6d,6h,14s,3c":     "Three of a kind, sixes",
		"14c,2d,3h,4s,5c":     "Straight, five high",
		"2h,4h,6h,8h,10h":     "Flush, ten high",
		"12c,12d,12h,2s,2c":   "Full house, queens full of twos",
		"9c,9d,9h,9s,14c":     "Four of a kind, nines",
		"5d,6d,7d,8d,9d":      "Straight flush, nine high",
		"10s,11s,12s,13s,14s": "Royal flush",
	}

	for cards, want := range tests {
		assert.Equal(t, want, MustHand(cards).Classify().String(), cards)
	}
}

func TestClassification_TieBreakIsCopy(t *testing.T) {
	c := MustHand("2h,4h,6h,8h,10h").Classify()
	tb := c.TieBreak()
	tb[0] = deck.Two
	assert.Equal(t, deck.Ten, c.TieBreak()[0])
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "High card", HighCard.String())
	assert.Equal(t, "Straight flush", StraightFlush.String())
	assert.Panics(t, func() { _ = Category(99).String() })
	assert.Len(t, Categories, 9)
	for i := 1; i < len(Categories); i++ {
		assert.True(t, Categories[i-1] < Categories[i])
	}
}
