package preview

import (
	"context"
	"log"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	"github.com/formstate/formstate/ent"
	"github.com/formstate/formstate/ent/formbehavior"
	"github.com/formstate/formstate/ent/formdefinition"
	"github.com/formstate/formstate/internal/behavior"
	"github.com/formstate/formstate/internal/event"
	"github.com/formstate/formstate/internal/form"
)

// session is one live preview connection. state and formID are guarded by
// mu; writes to the connection are serialised through send.
type session struct {
	conn *websocket.Conn

	mu     sync.Mutex
	formID uuid.UUID
	state  string
}

func (s *session) send(ctx context.Context, msg ServerMessage) {
	if err := wsjson.Write(ctx, s.conn, msg); err != nil {
		log.Printf("preview: write error: %v", err)
	}
}

func (s *session) sendError(ctx context.Context, requestID, code, message string) {
	s.send(ctx, ServerMessage{
		Type:      "error",
		RequestID: requestID,
		Data: ErrorData{
			Code:    code,
			Message: message,
		},
	})
}

// Hub tracks live preview sessions and re-renders them when the form they
// watch changes. It subscribes to the event bus as an ordinary consumer.
type Hub struct {
	client *ent.Client

	mu       sync.Mutex
	sessions map[*session]struct{}
}

// NewHub creates an empty hub backed by the given ent client.
func NewHub(client *ent.Client) *Hub {
	return &Hub{
		client:   client,
		sessions: make(map[*session]struct{}),
	}
}

func (h *Hub) add(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s] = struct{}{}
}

func (h *Hub) remove(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, s)
}

// HandleEvent pushes a fresh render to every session subscribed to the
// form the event concerns. Only schema and behavior changes alter a
// rendered view; other event types are ignored.
func (h *Hub) HandleEvent(ctx context.Context, evt event.DomainEvent) error {
	switch evt.EventType {
	case "form_schema_updated", "behaviors_updated":
	default:
		return nil
	}
	formID, err := uuid.Parse(evt.FormID)
	if err != nil {
		return nil
	}

	h.mu.Lock()
	watching := make([]*session, 0, len(h.sessions))
	for s := range h.sessions {
		s.mu.Lock()
		if s.formID == formID {
			watching = append(watching, s)
		}
		s.mu.Unlock()
	}
	h.mu.Unlock()

	for _, s := range watching {
		h.pushRender(ctx, s, "")
	}
	return nil
}

// pushRender recomputes the session's view and sends it. Errors are
// reported on the connection rather than tearing it down: a form deleted
// mid-session should not kill the preview socket.
func (h *Hub) pushRender(ctx context.Context, sess *session, requestID string) {
	sess.mu.Lock()
	formID, state := sess.formID, sess.state
	sess.mu.Unlock()

	view, err := h.renderView(ctx, formID, state)
	if err != nil {
		if ent.IsNotFound(err) {
			sess.sendError(ctx, requestID, "not_found", "form not found")
			return
		}
		sess.sendError(ctx, requestID, "internal", err.Error())
		return
	}
	sess.send(ctx, ServerMessage{
		Type:      "render",
		RequestID: requestID,
		Data:      RenderData{FormID: formID.String(), View: view},
	})
}

// renderView loads the form and its behaviors and renders the schema for
// the given state. Unlike the HTTP render endpoint it accepts states the
// form does not declare, so a designer can preview a state before adding it.
func (h *Hub) renderView(ctx context.Context, formID uuid.UUID, state string) (form.Rendered, error) {
	f, err := h.client.FormDefinition.Get(ctx, formID)
	if err != nil {
		return form.Rendered{}, err
	}
	rows, err := h.client.FormBehavior.Query().
		Where(formbehavior.HasFormWith(formdefinition.IDEQ(formID))).
		All(ctx)
	if err != nil {
		return form.Rendered{}, err
	}
	bundles := make([]behavior.Bundle, 0, len(rows))
	for _, fb := range rows {
		bundles = append(bundles, behavior.Bundle{
			State:  fb.State,
			Action: behavior.Action(fb.Action),
			Rows:   fb.Rows,
		})
	}
	return form.Render(f.Schema, bundles, f.States, state), nil
}
