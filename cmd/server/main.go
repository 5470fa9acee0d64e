package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/formstate/formstate/ent"
	"github.com/formstate/formstate/internal/event"
	"github.com/formstate/formstate/internal/eventbus"
	"github.com/formstate/formstate/internal/handler"
	"github.com/formstate/formstate/internal/history"
	"github.com/formstate/formstate/internal/server"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/formstate/formstate/ent/runtime"
	_ "modernc.org/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "file:formstate.db?_pragma=foreign_keys(1)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	db.SetMaxOpenConns(1)

	// SQLite does not enforce foreign keys unless told to.
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		log.Fatalf("enabling foreign keys: %v", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	defer client.Close()

	if err := client.Schema.Create(ctx); err != nil {
		log.Fatalf("running schema migration: %v", err)
	}
	log.Println("database migrated successfully")

	store := history.NewMemoryStore()
	bus := eventbus.New(256)
	bus.Subscribe("log", eventbus.NewLogConsumer())

	recorder := event.NewHistoryRecorder(store)
	recorder.SetPublisher(bus)
	handler.SetRecorder(recorder)

	bus.Start(ctx)
	defer bus.Stop()

	port := 8080
	if p := os.Getenv("PORT"); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	if err := server.Run(ctx, server.Config{
		Port:     port,
		DBClient: client,
		History:  store,
		Bus:      bus,
	}); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
