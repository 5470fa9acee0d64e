// cmd/migrate applies versioned SQL migrations with the Atlas CLI.
//
// cmd/server runs ent's automatic schema creation on startup, which is fine
// for development against a scratch SQLite file. For a database that outlives
// deploys, use this tool instead: it shells out to an installed `atlas`
// binary and applies the migration directory under ./migrations.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("migrate: ")

	var (
		dbURL  = flag.String("url", envOr("DATABASE_URL", "sqlite://formstate.db?_fk=1"), "database URL")
		dirURL = flag.String("dir", "file://migrations", "migration directory URL")
		bin    = flag.String("atlas", "atlas", "path to the atlas binary")
	)
	flag.Parse()

	cmd := "apply"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("getwd: %v", err)
	}
	client, err := atlasexec.NewClient(wd, *bin)
	if err != nil {
		log.Fatalf("creating atlas client: %v", err)
	}

	switch cmd {
	case "apply":
		res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
			URL:    *dbURL,
			DirURL: *dirURL,
		})
		if err != nil {
			log.Fatalf("applying migrations: %v", err)
		}
		for _, m := range res.Applied {
			fmt.Printf("applied %s (%s)\n", m.Name, m.Version)
		}
		fmt.Printf("database at version %s (%d applied)\n", res.Target, len(res.Applied))
	case "status":
		res, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
			URL:    *dbURL,
			DirURL: *dirURL,
		})
		if err != nil {
			log.Fatalf("checking migration status: %v", err)
		}
		fmt.Printf("status: %s, current %s, pending %d\n", res.Status, res.Current, len(res.Pending))
	default:
		log.Fatalf("unknown command %q (want apply or status)", cmd)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
