package poker

import "sync"

// ClassifyAll classifies every hand
// Hands are independent, so each one is classified in its own goroutine.
func ClassifyAll(hands []Hand) []Classification {
	classes := make([]Classification, len(hands))

	var wg sync.WaitGroup
	wg.Add(len(hands))
	for i, h := range hands {
		go func(i int, h Hand) {
			defer wg.Done()
			classes[i] = h.Classify()
		}(i, h)
	}
	wg.Wait()

	return classes
}

// Scores builds the score of each classification
func Scores(classes []Classification) []Score {
	scores := make([]Score, len(classes))
	for i, c := range classes {
		scores[i] = NewScore(c)
	}

	return scores
}

// Evaluate scores every hand concurrently
func Evaluate(hands []Hand) []Score {
	return Scores(ClassifyAll(hands))
}

// BestScores returns the indices of the highest scores, in index order
// More than one index is returned on a tie. An empty input returns nil.
func BestScores(scores []Score) []int {
	var winners []int
	for i, s := range scores {
		if len(winners) == 0 {
			winners = []int{i}
			continue
		}

		switch Compare(s, scores[winners[0]]) {
		case 1:
			winners = []int{i}
		case 0:
			winners = append(winners, i)
		}
	}

	return winners
}

// Winners returns the indices of the best hands
func Winners(hands []Hand) []int {
	return BestScores(Evaluate(hands))
}
