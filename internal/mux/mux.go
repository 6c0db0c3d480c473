package mux

import (
	"context"
	"net/http"

	"handeval/internal/config"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxRequestIDKey ctxKey = iota
)

// RequestIDHeader carries the id of a request in both directions
const RequestIDHeader = "X-Request-ID"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  muxConfig
	version string
}

type muxConfig struct {
	// maxHands is the most hands accepted by a single showdown
	maxHands int
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		config: muxConfig{
			maxHands: config.Instance().MaxHands,
		},
	}

	this.Router.Use(requestIDMiddleware)

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/hand").Handler(this.postHand())
	r.Methods(http.MethodPost).Path("/showdown").Handler(this.postShowdown())

	return this
}

// requestIDMiddleware reuses the caller's request id or assigns a new one
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxRequestIDKey, id)))
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(ctxRequestIDKey).(string)
	return id
}
