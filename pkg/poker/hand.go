package poker

import (
	"errors"
	"fmt"
	"sort"

	"handeval/pkg/deck"
)

// HandSize is the number of cards in a poker hand
const HandSize = 5

// ErrInvalidHandSize is returned when a hand is built from the wrong number of cards
var ErrInvalidHandSize = errors.New("invalid hand size")

// ErrDuplicateCard is returned when a hand is built with the same card twice
var ErrDuplicateCard = errors.New("duplicate card")

// Hand is an immutable set of five distinct cards
// A Hand must be built with NewHand (or HandFromString); the zero value is not a valid hand
// and panics when classified.
type Hand struct {
	cards [HandSize]deck.Card
}

// NewHand validates and copies the cards into a new Hand
// Every card must be a standard card (see deck.Card.Valid) and no card may appear twice.
func NewHand(cards []deck.Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, fmt.Errorf("%w: expected %d cards, got %d", ErrInvalidHandSize, HandSize, len(cards))
	}

	var h Hand
	for i, card := range cards {
		if !card.Valid() {
			return Hand{}, fmt.Errorf("%w: rank %d of %q", deck.ErrInvalidCard, card.Rank, card.Suit)
		}

		for _, prev := range h.cards[:i] {
			if prev.Equal(card) {
				return Hand{}, fmt.Errorf("%w: %s", ErrDuplicateCard, card)
			}
		}

		h.cards[i] = card
	}

	return h, nil
}

// HandFromString parses cards in the format of 2c,3h,4s,... into a Hand
func HandFromString(s string) (Hand, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return Hand{}, err
	}

	return NewHand(cards)
}

// MustHand is like HandFromString, but panics on error
// It is intended for tests and static tables.
func MustHand(s string) Hand {
	h, err := HandFromString(s)
	if err != nil {
		panic(fmt.Sprintf("could not create hand %q: %v", s, err))
	}

	return h
}

// Cards returns a copy of the cards in the order they were supplied
func (h Hand) Cards() []deck.Card {
	cards := make([]deck.Card, HandSize)
	copy(cards, h.cards[:])
	return cards
}

// Sorted returns a copy of the cards sorted from lowest to highest rank
func (h Hand) Sorted() []deck.Card {
	cards := h.Cards()
	sort.Stable(sortByRank(cards))
	return cards
}

func (h Hand) String() string {
	return deck.CardsToString(h.cards[:])
}
