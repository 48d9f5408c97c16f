package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-sync/models"
)

// Defaults applied to unset client settings.
const (
	DefaultConnectTimeout = 30 * time.Second
	DefaultServerTimeout  = 5 * time.Minute
	DefaultRequestTimeout = 30 * time.Second
	DefaultSyncInterval   = 5 * time.Minute
	DefaultBatchSize      = 100
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HubAddress is the websocket URL of the sync hub.
	HubAddress string
	// HTTPAddress is the REST API base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound REST requests.
	RequestTimeout time.Duration
	// ConnectTimeout bounds one sync connection attempt.
	ConnectTimeout time.Duration
	// ServerTimeout is the inactivity ceiling of the sync connection.
	ServerTimeout time.Duration
	// RefreshToken is exchanged for access tokens.
	RefreshToken string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the auto-sync scheduler runs.
	SyncInterval time.Duration
}

// ClientSync contains the settings of a sync run.
type ClientSync struct {
	// BatchSize caps the number of items per pushed batch.
	BatchSize int
	// Options are the options of a one-shot sync.
	Options models.SyncOptions
	// Daemon keeps the client running with the auto-sync scheduler.
	Daemon bool
	// Password and KeySalt derive the data key.
	Password string
	KeySalt  string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Sync contains sync run settings.
	Sync ClientSync
	// LogFile is the rotated log path; empty logs to stdout.
	LogFile string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills defaults, and validates the result.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	syncType := models.SyncType(cfg.Sync.Type)
	if syncType == "" {
		syncType = models.SyncTypeFull
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HubAddress:     cfg.Adapter.HubAddress,
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: orDuration(cfg.Adapter.RequestTimeout, DefaultRequestTimeout),
			ConnectTimeout: orDuration(cfg.Adapter.ConnectTimeout, DefaultConnectTimeout),
			ServerTimeout:  orDuration(cfg.Adapter.ServerTimeout, DefaultServerTimeout),
			RefreshToken:   cfg.Adapter.RefreshToken,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{SyncInterval: orDuration(cfg.Workers.SyncInterval, DefaultSyncInterval)},
		Sync: ClientSync{
			BatchSize: orInt(cfg.Sync.BatchSize, DefaultBatchSize),
			Options:   models.SyncOptions{Type: syncType, Force: cfg.Sync.Force},
			Daemon:    cfg.Sync.Daemon,
			Password:  cfg.Sync.Password,
			KeySalt:   cfg.Sync.KeySalt,
		},
		LogFile: cfg.Log.File,
	}

	return clientCfg, clientCfg.validate()
}

func orDuration(v, fallback time.Duration) time.Duration {
	if v <= 0 {
		return fallback
	}
	return v
}

func orInt(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
