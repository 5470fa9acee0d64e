package preview

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	"github.com/formstate/formstate/ent"
	"github.com/formstate/formstate/internal/behavior"
)

// Handler manages WebSocket connections for the live preview. Each
// connection subscribes to a single form and receives a fresh render
// whenever its viewing state changes or the form is edited.
type Handler struct {
	client *ent.Client
	hub    *Hub
}

// NewHandler creates a WebSocket handler backed by the given ent client
// and hub.
func NewHandler(client *ent.Client, hub *Hub) *Handler {
	return &Handler{client: client, hub: hub}
}

// ServeHTTP upgrades to WebSocket and runs the message loop.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Printf("preview: websocket accept: %v", err)
		return
	}
	defer conn.CloseNow()

	sess := &session{conn: conn}
	defer h.hub.remove(sess)
	ctx := r.Context()

	for {
		var msg ClientMessage
		err := wsjson.Read(ctx, conn, &msg)
		if err != nil {
			if websocket.CloseStatus(err) != -1 {
				log.Printf("preview: connection closed: %v", websocket.CloseStatus(err))
			}
			return
		}

		switch msg.Type {
		case "subscribe":
			h.handleSubscribe(ctx, sess, msg)
		case "state":
			h.handleState(ctx, sess, msg)
		case "ping":
			sess.send(ctx, ServerMessage{Type: "pong", RequestID: msg.ID})
		default:
			sess.sendError(ctx, msg.ID, "unknown_type", fmt.Sprintf("unknown message type: %s", msg.Type))
		}
	}
}

func (h *Handler) handleSubscribe(ctx context.Context, sess *session, msg ClientMessage) {
	var data SubscribeData
	if err := json.Unmarshal(msg.Data, &data); err != nil {
		sess.sendError(ctx, msg.ID, "invalid_data", "invalid subscribe data")
		return
	}
	formID, err := uuid.Parse(data.FormID)
	if err != nil {
		sess.sendError(ctx, msg.ID, "invalid_data", "form_id must be a UUID")
		return
	}

	f, err := h.client.FormDefinition.Get(ctx, formID)
	if err != nil {
		if ent.IsNotFound(err) {
			sess.sendError(ctx, msg.ID, "not_found", "form not found")
			return
		}
		sess.sendError(ctx, msg.ID, "internal", err.Error())
		return
	}

	// A new subscription starts at the form's entry state.
	state := behavior.DefaultEntryState
	if len(f.States) > 0 {
		state = f.States[0]
	}

	sess.mu.Lock()
	sess.formID = formID
	sess.state = state
	sess.mu.Unlock()
	h.hub.add(sess)

	h.hub.pushRender(ctx, sess, msg.ID)
}

func (h *Handler) handleState(ctx context.Context, sess *session, msg ClientMessage) {
	var data StateData
	if err := json.Unmarshal(msg.Data, &data); err != nil {
		sess.sendError(ctx, msg.ID, "invalid_data", "invalid state data")
		return
	}
	if data.State == "" {
		sess.sendError(ctx, msg.ID, "invalid_data", "state must not be empty")
		return
	}

	sess.mu.Lock()
	subscribed := sess.formID != uuid.Nil
	sess.state = data.State
	sess.mu.Unlock()
	if !subscribed {
		sess.sendError(ctx, msg.ID, "not_subscribed", "subscribe to a form first")
		return
	}

	h.hub.pushRender(ctx, sess, msg.ID)
}

