// Command rango-query runs an AQL query against a server and prints the
// result documents as JSON lines.
//
// Usage:
//
//	rango-query 'FOR d IN documents LIMIT 10 RETURN d'
//
// The connection target and credentials come from RANGO_* environment
// variables; see internal/config.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/forgo/rango/api"
	"github.com/forgo/rango/client"
	"github.com/forgo/rango/connector"
	"github.com/forgo/rango/cursor"
	"github.com/forgo/rango/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: rango-query [-verbose] <query>")
		return 2
	}
	queryText := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		return 1
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return 1
	}

	ds, err := cfg.DataSource()
	if err != nil {
		slog.Error("invalid endpoint", slog.String("error", err.Error()))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn := connector.NewConnector(ds, connector.WithLogger(logger)).DefaultConnection()
	if cfg.Auth.Method == "jwt" {
		if err := client.Login(ctx, conn, cfg.Auth.Username, cfg.Auth.Password); err != nil {
			slog.Error("login failed", slog.String("error", err.Error()))
			return 1
		}
	}

	version, err := client.GetServerVersion(ctx, conn, false)
	if err != nil {
		slog.Error("failed to reach server", slog.String("error", err.Error()))
		return 1
	}
	slog.Info("connected",
		slog.String("server", version.Server),
		slog.String("version", version.Version),
		slog.String("database", conn.Database()),
	)

	nc := cursor.NewFromQuery(api.NewQuery(queryText))
	if cfg.Query.BatchSize > 0 {
		nc.WithBatchSize(uint32(cfg.Query.BatchSize))
	}
	if cfg.Query.Count {
		nc.WithCount()
	}

	it, err := cursor.Query[json.RawMessage](ctx, conn, nc)
	if err != nil {
		slog.Error("query failed", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := it.Close(context.Background()); err != nil {
			slog.Warn("failed to close cursor", slog.String("error", err.Error()))
		}
	}()

	out := json.NewEncoder(os.Stdout)
	documents := 0
	for it.Next(ctx) {
		if err := out.Encode(it.Value()); err != nil {
			slog.Error("failed to write document", slog.String("error", err.Error()))
			return 1
		}
		documents++
	}
	if err := it.Err(); err != nil {
		slog.Error("query failed mid-stream", slog.String("error", err.Error()))
		return 1
	}

	if total, ok := it.Count(); ok {
		slog.Info("query finished", slog.Int("documents", documents), slog.Int64("total", total))
	} else {
		slog.Info("query finished", slog.Int("documents", documents))
	}
	return 0
}
