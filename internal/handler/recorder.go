package handler

import (
	"context"
	"log"

	"github.com/formstate/formstate/internal/event"
)

// defaultRecorder is the package-level event recorder.
// Event recording is cross-cutting across all handlers, so it is configured
// once during server startup via SetRecorder rather than threaded through
// every handler constructor.
var defaultRecorder event.Recorder

// SetRecorder sets the package-level event recorder.
// Call this during server startup before handling requests.
func SetRecorder(r event.Recorder) {
	defaultRecorder = r
}

// recordEvent records a domain event if a recorder is configured.
// Errors are logged but do not fail the request — event recording
// is best-effort and should not block command execution.
func recordEvent(ctx context.Context, evt event.DomainEvent) {
	if defaultRecorder == nil {
		return
	}
	if err := defaultRecorder.Record(ctx, evt); err != nil {
		log.Printf("event recording failed: %v", err)
	}
}
