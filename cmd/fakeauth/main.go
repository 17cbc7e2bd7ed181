// Command fakeauth serves an in-memory auth API for running the client
// locally.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-auth-form/internal/fakeapi"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/caarlos0/env/v11"
)

type fakeAuthConfig struct {
	Address       string        `env:"ADDRESS" envDefault:"localhost:8080"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	SignKey       string        `env:"SIGN_KEY"`
	TokenInHeader bool          `env:"TOKEN_IN_HEADER"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	var cfg fakeAuthConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "FAKEAUTH_"}); err != nil {
		fmt.Fprintf(os.Stderr, "error parsing env: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(os.Stdout, "go-auth-form-fakeauth", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler := fakeapi.NewHandler(fakeapi.Options{
		SignKey:       []byte(cfg.SignKey),
		TokenTTL:      cfg.TokenTTL,
		TokenInHeader: cfg.TokenInHeader,
	}, log)

	if err := fakeapi.NewServer(cfg.Address, handler, log).Run(ctx); err != nil {
		log.Error().Err(err).Msg("fake auth API stopped")
		os.Exit(1)
	}
}
