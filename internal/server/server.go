// Package server assembles all HTTP handlers and starts the server.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/formstate/formstate/ent"
	"github.com/formstate/formstate/internal/eventbus"
	"github.com/formstate/formstate/internal/handler"
	"github.com/formstate/formstate/internal/history"
	"github.com/formstate/formstate/internal/preview"
)

// Config holds server configuration.
type Config struct {
	Port     int
	DBClient *ent.Client
	History  history.Store
	Bus      *eventbus.Bus
}

// Run starts the HTTP server with all routes registered. It blocks until
// the context is cancelled or the listener fails.
func Run(ctx context.Context, cfg Config) error {
	r := chi.NewRouter()

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	fh := handler.NewFormHandler(cfg.DBClient)
	bh := handler.NewBehaviorHandler(cfg.DBClient)
	eh := handler.NewEntryHandler(cfg.DBClient)
	hh := handler.NewHistoryHandler(cfg.History)

	hub := preview.NewHub(cfg.DBClient)
	if cfg.Bus != nil {
		cfg.Bus.Subscribe("preview", hub)
	}
	ws := preview.NewHandler(cfg.DBClient, hub)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/forms", fh.CreateForm)
		r.Get("/forms", fh.ListForms)
		r.Get("/forms/{id}", fh.GetForm)
		r.Patch("/forms/{id}", fh.UpdateForm)
		r.Delete("/forms/{id}", fh.DeleteForm)
		r.Get("/forms/{id}/fields", fh.ListFields)

		r.Get("/forms/{id}/matrix", bh.GetMatrix)
		r.Put("/forms/{id}/matrix", bh.PutMatrix)
		r.Get("/forms/{id}/bundles", bh.GetBundles)
		r.Get("/forms/{id}/render", bh.Render)

		r.Post("/forms/{id}/entries", eh.SubmitEntry)
		r.Get("/forms/{id}/entries", eh.ListEntries)
		r.Get("/entries/{id}", eh.GetEntry)

		r.Get("/forms/{id}/history", hh.GetHistory)

		r.Get("/ws/preview", ws.ServeHTTP)
	})

	// Wrap with middleware
	wrapped := handler.Recovery(handler.Logging(r))

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("starting server on %s", addr)

	server := &http.Server{
		Addr:    addr,
		Handler: wrapped,
	}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	return server.ListenAndServe()
}
