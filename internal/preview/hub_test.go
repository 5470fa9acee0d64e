package preview

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formstate/formstate/internal/event"
)

func TestHubIgnoresUnrelatedEvents(t *testing.T) {
	hub := NewHub(nil)

	// entry_submitted does not change a rendered view; with no client to
	// push to, a render-worthy event would hit the nil ent client.
	err := hub.HandleEvent(context.Background(), event.DomainEvent{
		EventType: "entry_submitted",
		FormID:    "5b2c1d8e-3f74-4a1b-9c6d-0e8f7a6b5c4d",
	})
	assert.NoError(t, err)

	err = hub.HandleEvent(context.Background(), event.DomainEvent{
		EventType: "behaviors_updated",
		FormID:    "not-a-uuid",
	})
	assert.NoError(t, err, "unparseable form ids are dropped, not fatal")
}

func TestHubAddRemove(t *testing.T) {
	hub := NewHub(nil)
	s := &session{}

	hub.add(s)
	hub.mu.Lock()
	assert.Len(t, hub.sessions, 1)
	hub.mu.Unlock()

	hub.remove(s)
	hub.mu.Lock()
	assert.Empty(t, hub.sessions)
	hub.mu.Unlock()

	// Removing twice is fine; the connection loop defers remove
	// unconditionally.
	hub.remove(s)
}

func TestClientMessageEnvelope(t *testing.T) {
	raw := []byte(`{"type":"subscribe","id":"req-1","data":{"form_id":"abc"}}`)

	var msg ClientMessage
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "subscribe", msg.Type)
	assert.Equal(t, "req-1", msg.ID)

	var data SubscribeData
	require.NoError(t, json.Unmarshal(msg.Data, &data))
	assert.Equal(t, "abc", data.FormID)
}
