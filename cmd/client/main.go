package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-auth-form/internal/adapter"
	"github.com/MKhiriev/go-auth-form/internal/authform"
	"github.com/MKhiriev/go-auth-form/internal/client"
	"github.com/MKhiriev/go-auth-form/internal/config"
	"github.com/MKhiriev/go-auth-form/internal/logger"
	"github.com/MKhiriev/go-auth-form/internal/service"
	"github.com/MKhiriev/go-auth-form/internal/store"
	"github.com/MKhiriev/go-auth-form/internal/tui"
	"github.com/MKhiriev/go-auth-form/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log, logFile, err := logger.NewClientLogger("go-auth-form-client", cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err = run(cfg, buildInfo, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	ctx := context.Background()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log.GetChildLogger("adapter"))
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log.GetChildLogger("store"))
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer localStorage.Close()

	services := service.NewClientServices(ctx, localStorage, serverAdapter, log)

	ctrl := authform.NewController(services.AuthService, log.GetChildLogger("authform"))
	ui := tui.New(ctrl, services.AuthService, buildInfo, log.GetChildLogger("tui"))

	app, err := client.NewApp(ctrl, ui, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
