package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is returned when a card string cannot be parsed
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits lists every suit in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Valid returns true if the suit is one of the four suits
func (s Suit) Valid() bool {
	for _, suit := range Suits {
		if s == suit {
			return true
		}
	}

	return false
}

// Rank is the value of a card. Ace is always the highest rank.
type Rank int

// rank constants
const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// HighAce and LowAce are the two values an ace can take inside a straight
const (
	HighAce = Ace
	LowAce  = Rank(1)
)

// String returns the short name of the rank, i.e., "A" or "10"
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace, LowAce:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

// Name returns the singular English name of the rank
func (r Rank) Name() string {
	switch r {
	case Jack:
		return "jack"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Ace, LowAce:
		return "ace"
	case Two:
		return "two"
	case Three:
		return "three"
	case Four:
		return "four"
	case Five:
		return "five"
	case Six:
		return "six"
	case Seven:
		return "seven"
	case Eight:
		return "eight"
	case Nine:
		return "nine"
	case Ten:
		return "ten"
	default:
		return strconv.Itoa(int(r))
	}
}

// Plural returns the plural English name of the rank
func (r Rank) Plural() string {
	if r == Six {
		return "sixes"
	}

	return r.Name() + "s"
}

// Valid returns true if the rank is between Two and Ace
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Card is an individual playing card
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard returns a card. It never fails; Valid reports whether the card belongs to a standard deck.
func NewCard(suit Suit, rank Rank) Card {
	return Card{Rank: rank, Suit: suit}
}

func (c Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return c.Rank.String() + suit
}

// Compare orders two cards by rank only
// It returns -1 if c is lower than card, 1 if it is higher, and 0 if the ranks match.
func (c Card) Compare(card Card) int {
	switch {
	case c.Rank < card.Rank:
		return -1
	case c.Rank > card.Rank:
		return 1
	default:
		return 0
	}
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Valid returns true if the card belongs to a standard 52 card deck
// LowAce is not a valid rank for a card; an ace is always dealt as Ace.
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// AceLowRank return the rank where Ace is considered low instead of high
func (c Card) AceLowRank() Rank {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4]|[tjqka])([cdhs])\z`)

// ParseCard returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is 2-14 (or one of T, J, Q, K, A)
// and suit in [cdhs]
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var rank Rank
	switch strings.ToLower(match[1]) {
	case "t":
		rank = Ten
	case "j":
		rank = Jack
	case "q":
		rank = Queen
	case "k":
		rank = King
	case "a":
		rank = Ace
	default:
		r, err := strconv.Atoi(match[1])
		if err != nil {
			return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
		}
		rank = Rank(r)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// CardFromString is like ParseCard, but panics if the card cannot be parsed
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %v", err))
	}

	return card
}

// ParseCards parses a comma separated list of cards, i.e., "2c,3h,14s"
func ParseCards(s string) ([]Card, error) {
	if strings.TrimSpace(s) == "" {
		return []Card{}, nil
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, cardString := range cardStrings {
		card, err := ParseCard(cardString)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsFromString is like ParseCards, but panics on an invalid card
func CardsFromString(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse cards: %v", err))
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
