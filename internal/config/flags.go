package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-hub sync hub websocket URL
//	-http REST API base URL
//	-d SQLite DSN
//	-server-dsn PostgreSQL DSN of the server
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-refresh-token refresh token used to obtain access tokens
//	-request-timeout REST request timeout
//	-connect-timeout sync connection attempt timeout
//	-server-timeout sync connection inactivity timeout
//	-sync-interval auto-sync period
//	-batch-size maximum items per pushed batch
//	-type sync run type: full, fetch or send
//	-force force a full resync
//	-daemon run the auto-sync scheduler until interrupted
//	-log-file rotated log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var cfg StructuredConfig

	fs := flag.NewFlagSet("go-note-sync", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Adapter.HubAddress, "hub", "", "Sync hub websocket URL")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "http", "", "REST API base URL")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "SQLite DSN")
	fs.StringVar(&cfg.Server.DB.DSN, "server-dsn", "", "Server PostgreSQL DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&cfg.Adapter.RefreshToken, "refresh-token", "", "Refresh token")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "REST request timeout (e.g., 30s)")
	fs.DurationVar(&cfg.Adapter.ConnectTimeout, "connect-timeout", 0, "Sync connection attempt timeout")
	fs.DurationVar(&cfg.Adapter.ServerTimeout, "server-timeout", 0, "Sync connection inactivity timeout")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Auto-sync interval")
	fs.IntVar(&cfg.Sync.BatchSize, "batch-size", 0, "Maximum items per pushed batch")
	fs.StringVar(&cfg.Sync.Type, "type", "", "Sync type: full, fetch or send")
	fs.BoolVar(&cfg.Sync.Force, "force", false, "Force a full resync")
	fs.BoolVar(&cfg.Sync.Daemon, "daemon", false, "Run the auto-sync scheduler")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
