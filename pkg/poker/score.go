package poker

import (
	"fmt"
	"math"
	"strings"

	"handeval/pkg/deck"
)

// Score is the comparable strength of a hand
// Two scores are equal with == exactly when the hands tie.
type Score struct {
	Category Category
	// TieBreak holds the category's tie-break ranks, most significant first
	// Unused trailing slots are zero.
	TieBreak [HandSize]deck.Rank
}

// NewScore builds the score for a classification
func NewScore(c Classification) Score {
	s := Score{Category: c.Category()}
	copy(s.TieBreak[:], c.TieBreak())
	return s
}

// Score returns the score of the hand
func (h Hand) Score() Score {
	return NewScore(h.Classify())
}

// Compare returns -1 if a is a weaker hand than b, 1 if it is stronger, and 0 on a tie
func Compare(a, b Score) int {
	if a.Category != b.Category {
		if a.Category < b.Category {
			return -1
		}

		return 1
	}

	for i := range a.TieBreak {
		if a.TieBreak[i] < b.TieBreak[i] {
			return -1
		} else if a.TieBreak[i] > b.TieBreak[i] {
			return 1
		}
	}

	return 0
}

// Compare compares s to other, see Compare
func (s Score) Compare(other Score) int {
	return Compare(s, other)
}

// Less returns true if s loses to other
func (s Score) Less(other Score) bool {
	return Compare(s, other) < 0
}

// Equal returns true if s ties other
func (s Score) Equal(other Score) bool {
	return s == other
}

// Strength packs the score into a single int that sorts the same way as Compare
// Every rank is below 15, so each tie-break slot is a base-15 digit under the category.
func (s Score) Strength() int {
	strength := int(math.Pow(15, HandSize)) * int(s.Category)
	place := 1
	for i := HandSize - 1; i >= 0; i-- {
		strength += place * int(s.TieBreak[i])
		place *= 15
	}

	return strength
}

func (s Score) String() string {
	ranks := make([]string, 0, HandSize)
	for _, r := range s.TieBreak {
		if r == 0 {
			break
		}

		ranks = append(ranks, r.String())
	}

	return fmt.Sprintf("%s [%s]", s.Category, strings.Join(ranks, " "))
}
