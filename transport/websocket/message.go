package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const (
	actionGameState = "game:state"
	actionError     = "error"

	actionGameStart = "game:start"
	actionGameMove  = "game:move"
	actionGameUndo  = "game:undo"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type MovePayload struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type ErrorPayload struct {
	Error string            `json:"error"`
	Game  *entity.GameState `json:"game,omitempty"`
}

func newMessage(action string, payload any) (*Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Message{Action: action, Payload: raw}, nil
}
