// Package preview defines the WebSocket protocol for the live form preview.
package preview

import (
	"encoding/json"

	"github.com/formstate/formstate/internal/form"
)

// ── Client → Server messages ────────────────────────────────────────────────

// ClientMessage is the envelope for all client-to-server WebSocket messages.
type ClientMessage struct {
	Type string          `json:"type"` // "subscribe", "state", "ping"
	ID   string          `json:"id"`   // Client-assigned request ID
	Data json.RawMessage `json:"data,omitempty"`
}

// SubscribeData is the payload for "subscribe" messages.
type SubscribeData struct {
	FormID string `json:"form_id"`
}

// StateData is the payload for "state" messages.
type StateData struct {
	State string `json:"state"`
}

// ── Server → Client messages ────────────────────────────────────────────────

// ServerMessage is the envelope for all server-to-client WebSocket messages.
type ServerMessage struct {
	Type      string `json:"type"`                 // "render", "error", "pong"
	RequestID string `json:"request_id,omitempty"` // Echoes client ID
	Data      any    `json:"data,omitempty"`
}

// RenderData carries a rendered form view. Pushed in response to
// "subscribe" and "state" messages, and again whenever the form's schema
// or behaviors change while the subscription is live.
type RenderData struct {
	FormID string        `json:"form_id"`
	View   form.Rendered `json:"view"`
}

// ErrorData carries an error message.
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
