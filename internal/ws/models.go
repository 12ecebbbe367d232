package ws

import (
	"encoding/json"
)

const (
	EventMovesRequest  = "moves_request"
	EventPlaceRequest  = "place_request"
	EventDecideRequest = "decide_request"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

// Outgoing is the reply to an Incoming message with the same ID. Error is set when the request was invalid.
type Outgoing struct {
	ID    int    `json:"id"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}
