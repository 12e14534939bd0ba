package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/quaylabs/multisearch-mcp/pkg/config"
	"github.com/quaylabs/multisearch-mcp/pkg/ddgs"
	"github.com/quaylabs/multisearch-mcp/pkg/engine"
	"github.com/quaylabs/multisearch-mcp/pkg/mcpserver"
	"github.com/quaylabs/multisearch-mcp/pkg/tools"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	logLevel := flag.String("log-level", "", "log level override (trace/debug/info/warn/error)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	// stdout carries the MCP transport, so logs go to stderr.
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	factory := engine.Factory(func() (engine.Engine, error) {
		return ddgs.NewClient(cfg.Engine)
	})
	adapter := engine.NewAdapter(factory, log)

	registry := tools.DefaultRegistry(adapter, tools.Config{
		FetchEnabled:        cfg.Tools.FetchEnabledOrDefault(),
		LegacySearchEnabled: cfg.Tools.LegacySearchEnabledOrDefault(),
	}, log)
	dispatcher := tools.NewDispatcher(registry, log)

	server := mcpserver.New(registry, dispatcher, mcpserver.Options{
		Name:    cfg.Server.Name,
		Version: cfg.Server.Version,
	}, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("server", cfg.Server.Name).
		Bool("fetch_enabled", cfg.Tools.FetchEnabledOrDefault()).
		Bool("legacy_search_enabled", cfg.Tools.LegacySearchEnabledOrDefault()).
		Msg("serving MCP over stdio")
	if err := mcpserver.Run(ctx, server); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
}
