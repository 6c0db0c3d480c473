package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_postHand(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var obj handResponse
	assertPost(t, ts, "/hand", handPayload{Cards: "14c,14d,13h,13s,2c"}, &obj, 200)
	assert.Equal(t, "14c,14d,13h,13s,2c", obj.Cards)
	assert.Equal(t, "Two pair", obj.Category)
	assert.Equal(t, "Two pair, aces and kings", obj.Description)
	assert.Equal(t, []string{"A", "K", "2"}, obj.TieBreak)
	assert.Greater(t, obj.Strength, 0)

	obj = handResponse{}
	assertPost(t, ts, "/hand", handPayload{Cards: "As,2d,3h,4s,5c"}, &obj, 200)
	assert.Equal(t, "Straight", obj.Category)
	assert.Equal(t, []string{"5"}, obj.TieBreak)

	var errObj errorResponse
	assertPost(t, ts, "/hand", handPayload{Cards: "2c,3c,4c,5c"}, &errObj, 400)
	assert.Equal(t, "invalid hand size: expected 5 cards, got 4", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/hand", handPayload{Cards: "2c,3c,4c,5c,2c"}, &errObj, 400)
	assert.Equal(t, "duplicate card: 2♣", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/hand", handPayload{Cards: "2c,3c,4c,5c,1c"}, &errObj, 400)
	assert.Equal(t, `invalid card: "1c"`, errObj.Message)

	assertPost(t, ts, "/hand", "{", nil, 400)
}

func Test_postShowdown(t *testing.T) {
	m := NewMux("")
	m.config.maxHands = 3

	ts := httptest.NewServer(m)
	defer ts.Close()

	var obj showdownResponse
	assertPost(t, ts, "/showdown", showdownPayload{Hands: []string{
		"2h,4h,6h,8h,10h",
		"5c,6d,7h,8s,9c",
		"2d,4d,6d,8d,10d",
	}}, &obj, 200)
	assert.Equal(t, []int{0, 2}, obj.Winners)
	assert.Len(t, obj.Hands, 3)
	assert.Equal(t, "Flush", obj.Hands[0].Category)
	assert.Equal(t, "Straight", obj.Hands[1].Category)
	assert.Equal(t, obj.Hands[0].Strength, obj.Hands[2].Strength)

	obj = showdownResponse{}
	assertPost(t, ts, "/showdown", showdownPayload{Hands: []string{
		"12c,12d,11h,11s,14c",
		"14c,14d,13h,13s,2c",
	}}, &obj, 200)
	assert.Equal(t, []int{1}, obj.Winners)

	var errObj errorResponse
	assertPost(t, ts, "/showdown", showdownPayload{}, &errObj, 400)
	assert.Equal(t, "at least one hand is required", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/showdown", showdownPayload{Hands: []string{"2c,3c,4c,5c,6c", "2c"}}, &errObj, 400)
	assert.Equal(t, "hand 1: invalid hand size: expected 5 cards, got 1", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/showdown", showdownPayload{Hands: []string{"a", "b", "c", "d"}}, &errObj, 400)
	assert.Equal(t, "a showdown cannot have more than 3 hands", errObj.Message)
}
