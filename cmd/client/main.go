package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/client"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/connection"
	"github.com/MKhiriev/go-note-sync/internal/crypto"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("note-sync-client", cfg.LogFile)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	keys := crypto.NewKeyStore()
	if cfg.Sync.Password != "" {
		keys.SetEncryptionKey(crypto.NewItemCipher().DeriveKey(cfg.Sync.Password, []byte(cfg.Sync.KeySalt)))
	}

	pushes := client.NewPushSignal()
	observer := service.Observers{service.LoggingObserver{Logger: log}, pushes}

	conn := connection.NewManager(connection.Config{
		URL:            cfg.Adapter.HubAddress,
		ConnectTimeout: cfg.Adapter.ConnectTimeout,
		ServerTimeout:  cfg.Adapter.ServerTimeout,
	}, &connection.WebsocketDialer{}, serverAdapter, observer, utils.NewUUIDGenerator(), log)

	services := service.NewClientServices(storages, serverAdapter, conn, keys, service.ClientOptions{
		BatchSize:    cfg.Sync.BatchSize,
		SyncInterval: cfg.Workers.SyncInterval,
		Policy:       service.StaticPolicy{Sync: true, AutoSync: cfg.Sync.Daemon},
		Observer:     observer,
	}, log)

	app, err := client.NewApp(services, cfg.Sync, pushes.C, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		storages.Close()
		os.Exit(1)
	}
}
