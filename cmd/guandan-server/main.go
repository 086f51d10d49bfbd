package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/guandan/internal/bot"
	"github.com/lox/guandan/internal/config"
	"github.com/lox/guandan/internal/registry"
	"github.com/lox/guandan/internal/transport"
)

type CLI struct {
	Addr       string `kong:"default=':8080',help='Server address'"`
	ConfigFile string `kong:"name='config',help='Path to an HCL server config file'"`
	Debug      bool   `kong:"help='Enable debug logging'"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("guandan-server"),
		kong.Description("Room server for four-player partnership Guandan"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	level := zerolog.InfoLevel
	if cli.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	cfgPath := cli.ConfigFile
	if cfgPath == "" {
		cfgPath = "guandan-server.hcl"
	}
	cfg, err := config.LoadServerConfig(cfgPath)
	if err != nil {
		kctx.FatalIfErrorf(err)
	}
	if err := cfg.Validate(); err != nil {
		kctx.FatalIfErrorf(err)
	}

	reg := registry.New(logger, quartz.NewReal(), bot.Heuristic{})
	for _, room := range cfg.Rooms {
		if room.AutoStart {
			rm := reg.JoinOrCreate("")
			logger.Info().Str("room", room.Name).Str("room_id", rm.ID.String()).Msg("pre-started room")
		}
	}

	handler := transport.NewHandler(reg, logger)
	mux := http.NewServeMux()
	mux.Handle("/ws", handler)

	addr := cli.Addr
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("server starting")
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			kctx.FatalIfErrorf(err)
		}
	case sig := <-sigChan:
		logger.Info().Str("signal", sig.String()).Msg("received signal, shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("http shutdown failed")
		}
		if err := reg.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("room shutdown failed")
		}

		if err := <-serverErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server exited with error")
		} else {
			logger.Info().Msg("server shutdown complete")
		}
	}
}
