// Package main is the entry point for the goaltask CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"goaltask/internal/backend/chatgpt"
	"goaltask/internal/backend/googletasks"
	"goaltask/internal/backend/notion"
	"goaltask/internal/cli"
	"goaltask/internal/commands"
	"goaltask/internal/config"
	"goaltask/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, newBackends)
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// newBackends builds the goal source, the drafter and the configured task sink.
func newBackends(ctx context.Context, cfg *config.Config, log *zap.Logger) (*service.Backends, error) {
	store := notion.New(ctx, cfg, log)
	backends := &service.Backends{
		Goals:   store,
		Drafter: chatgpt.New(cfg, log),
		Sink:    store,
	}

	if cfg.Destination == config.DestinationGTasks {
		sink, err := googletasks.New(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		backends.Sink = sink
	}
	return backends, nil
}
