package mux

import (
	"errors"
	"fmt"
	"net/http"

	"handeval/pkg/deck"
	"handeval/pkg/poker"

	"github.com/sirupsen/logrus"
)

type handPayload struct {
	Cards string `json:"cards"`
}

type handResponse struct {
	Cards       string   `json:"cards"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	TieBreak    []string `json:"tieBreak"`
	Strength    int      `json:"strength"`
}

type showdownPayload struct {
	Hands []string `json:"hands"`
}

type showdownResponse struct {
	Hands   []handResponse `json:"hands"`
	Winners []int          `json:"winners"`
}

func newHandResponse(h poker.Hand, c poker.Classification) handResponse {
	tieBreak := make([]string, 0, poker.HandSize)
	for _, r := range c.TieBreak() {
		tieBreak = append(tieBreak, r.String())
	}

	return handResponse{
		Cards:       h.String(),
		Category:    c.Category().String(),
		Description: c.String(),
		TieBreak:    tieBreak,
		Strength:    poker.NewScore(c).Strength(),
	}
}

// isInputError returns true for errors caused by a bad hand in the request
func isInputError(err error) bool {
	return errors.Is(err, deck.ErrInvalidCard) ||
		errors.Is(err, poker.ErrInvalidHandSize) ||
		errors.Is(err, poker.ErrDuplicateCard)
}

func (m *Mux) postHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload handPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		h, err := poker.HandFromString(payload.Cards)
		if err != nil {
			if isInputError(err) {
				writeJSONError(w, http.StatusBadRequest, err)
			} else {
				writeJSONError(w, http.StatusInternalServerError, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, newHandResponse(h, h.Classify()))
	}
}

func (m *Mux) postShowdown() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload showdownPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		if len(payload.Hands) == 0 {
			writeJSONError(w, http.StatusBadRequest, errors.New("at least one hand is required"))
			return
		}

		if len(payload.Hands) > m.config.maxHands {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("a showdown cannot have more than %d hands", m.config.maxHands))
			return
		}

		hands := make([]poker.Hand, len(payload.Hands))
		for i, s := range payload.Hands {
			h, err := poker.HandFromString(s)
			if err != nil {
				if isInputError(err) {
					writeJSONError(w, http.StatusBadRequest, fmt.Errorf("hand %d: %w", i, err))
				} else {
					writeJSONError(w, http.StatusInternalServerError, err)
				}
				return
			}

			hands[i] = h
		}

		resp := showdownResponse{
			Hands: make([]handResponse, len(hands)),
		}

		classes := poker.ClassifyAll(hands)
		for i, h := range hands {
			resp.Hands[i] = newHandResponse(h, classes[i])
		}
		resp.Winners = poker.BestScores(poker.Scores(classes))

		logrus.WithFields(logrus.Fields{
			"requestID": requestID(r),
			"hands":     len(hands),
			"winners":   resp.Winners,
		}).Debug("showdown evaluated")

		writeJSON(w, http.StatusOK, resp)
	}
}
