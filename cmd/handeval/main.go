package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"handeval/internal/rng"
	"handeval/pkg/deck"
	"handeval/pkg/poker"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var (
	deal = flag.Int("deal", 0, "deal this many random hands instead of reading them from the arguments")
	seed = flag.Int64("seed", 0, "seed for -deal; 0 uses crypto/rand")
)

// maxDeal is how many five card hands fit in one deck
const maxDeal = 52 / poker.HandSize

type result struct {
	hand   poker.Hand
	class  poker.Classification
	winner bool
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-deal n [-seed s]] [hand ...]\n\nhands are comma separated cards, i.e., 14s,13s,12s,11s,10s\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	var hands []poker.Hand
	var err error
	if *deal > 0 {
		var gen rng.Generator = rng.Crypto{}
		if *seed != 0 {
			gen = rng.NewSeeded(*seed)
		}
		hands, err = dealHands(*deal, gen)
	} else {
		hands, err = parseHands(flag.Args())
	}

	if err != nil {
		logrus.WithError(err).Fatal("could not read hands")
	}

	if len(hands) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	results := evaluate(hands)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		err = renderTable(os.Stdout, results)
	} else {
		err = writePlain(os.Stdout, results)
	}

	if err != nil {
		logrus.WithError(err).Fatal("could not write results")
	}
}

func parseHands(args []string) ([]poker.Hand, error) {
	hands := make([]poker.Hand, len(args))
	for i, arg := range args {
		h, err := poker.HandFromString(arg)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}

		hands[i] = h
	}

	return hands, nil
}

func dealHands(n int, gen rng.Generator) ([]poker.Hand, error) {
	if n > maxDeal {
		return nil, fmt.Errorf("cannot deal more than %d hands from one deck", maxDeal)
	}

	d := deck.New()
	d.Shuffle(gen)

	hands := make([]poker.Hand, n)
	for i := range hands {
		cards, err := d.DrawN(poker.HandSize)
		if err != nil {
			return nil, err
		}

		if hands[i], err = poker.NewHand(cards); err != nil {
			return nil, err
		}
	}

	return hands, nil
}

func evaluate(hands []poker.Hand) []result {
	classes := poker.ClassifyAll(hands)
	results := make([]result, len(hands))
	for i, h := range hands {
		results[i] = result{hand: h, class: classes[i]}
	}

	for _, i := range poker.BestScores(poker.Scores(classes)) {
		results[i].winner = true
	}

	return results
}

func prettyCards(h poker.Hand) string {
	cards := h.Cards()
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = c.String()
	}

	return strings.Join(s, " ")
}

func renderTable(w io.Writer, results []result) error {
	data := pterm.TableData{{"#", "Hand", "Category", "Description", ""}}
	for i, r := range results {
		mark := ""
		if r.winner {
			mark = pterm.Green("winner")
		}

		data = append(data, []string{
			fmt.Sprint(i + 1),
			prettyCards(r.hand),
			r.class.Category().String(),
			r.class.String(),
			mark,
		})
	}

	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, s)
	return err
}

func writePlain(w io.Writer, results []result) error {
	for i, r := range results {
		mark := ""
		if r.winner {
			mark = "winner"
		}

		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, r.hand, r.class.Category(), r.class, mark); err != nil {
			return err
		}
	}

	return nil
}
