package server

import (
	"encoding/json"

	"cardtable/game"
)

// Wire message types. Any type not listed here is treated as an action
// name forwarded by the guest for the host to apply.
const (
	MsgGameState = "game_state"
	MsgAction    = "action"
	MsgReveal    = "reveal"
	MsgRoll      = "roll"
	MsgCoin      = "coin"
	MsgSystem    = "system"
	MsgChat      = "chat"
	MsgStartGame = "start_game"
)

// Message is the envelope for everything that crosses the transport.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// newMessage marshals payload into an envelope. Marshal failures cannot
// happen for our payload types, so they only get logged upstream.
func newMessage(msgType string, payload any) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msgType, Payload: raw}, nil
}

// ActionNotice echoes an applied action back out for UI feedback. It is
// informational only and never re-applied by the receiver.
type ActionNotice struct {
	Player game.Role       `json:"player"`
	Type   game.ActionType `json:"type"`
	game.ActionPayload
}

// RevealNotice shows specific cards to the opponent without moving them.
type RevealNotice struct {
	Cards    []game.CardInstance `json:"cards"`
	FromZone game.Zone           `json:"fromZone"`
}

// RollRequest asks the authoritative side for a die roll so both sides
// see the same result. Sides zero means coin flip semantics elsewhere.
type RollRequest struct {
	Sides int `json:"sides,omitempty"`
}

// SystemNotice is a free-form line for the other side's log.
type SystemNotice struct {
	Text string `json:"text"`
}

// ChatMessage is a player-to-player line, outside the game state.
type ChatMessage struct {
	Name string `json:"name,omitempty"`
	Text string `json:"text"`
}
