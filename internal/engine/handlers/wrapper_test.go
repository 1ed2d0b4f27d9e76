package handlers

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/samirachiny/Multiplayer-Fighting-Game-sub001/pkg/api"
)

func TestWithPayload(t *testing.T) {
	var got api.PositionPayload
	h := WithPayload(func(_ Context, p api.PositionPayload) (Result, error) {
		got = p
		return EmptyResult(), nil
	})

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"valid", `{"x":2,"y":3}`, nil},
		{"missing", ``, ErrMissingPayload},
		{"null", `null`, ErrMissingPayload},
		{"broken", `{"x":`, ErrInvalidPayload},
		{"fails validation", `{"x":-1,"y":0}`, ErrInvalidPayload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h(Context{PlayerID: "a"}, json.RawMessage(tt.raw))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
	if got.X != 2 || got.Y != 3 {
		t.Errorf("payload not decoded: %+v", got)
	}
}

func TestWithEmptyPayload(t *testing.T) {
	called := false
	h := WithEmptyPayload(func(ctx Context) (Result, error) {
		called = ctx.PlayerID == "a"
		return Refused("no"), nil
	})

	res, err := h(Context{PlayerID: "a"}, json.RawMessage(`{"junk":true}`))
	if err != nil || !called || res.MsgType != "REFUSED" {
		t.Errorf("res %+v err %v called %v", res, err, called)
	}
}
