package config

import (
	"net"
	"os"
	"strconv"
	"time"

	"github.com/friendsofgo/errors"
)

const (
	// DefaultPort is used when PORT is not set
	DefaultPort = 8080
	// ListenHost binds every interface
	ListenHost = "0.0.0.0"
	// MetadataHost is the GCE metadata server
	MetadataHost = "metadata.google.internal"
	// DefaultShutdownGrace bounds how long in-flight requests may drain
	DefaultShutdownGrace = 10 * time.Second

	portEnv = "PORT"
)

// Config holds the server settings
type Config struct {
	Port          int
	ListenHost    string
	MetadataHost  string
	ShutdownGrace time.Duration
}

// Load builds the configuration from the environment
func Load() (Config, error) {
	cfg := Config{
		Port:          DefaultPort,
		ListenHost:    ListenHost,
		MetadataHost:  MetadataHost,
		ShutdownGrace: DefaultShutdownGrace,
	}

	raw, ok := os.LookupEnv(portEnv)
	if !ok || raw == "" {
		return cfg, nil
	}

	port, err := strconv.Atoi(raw)
	if err != nil {
		return Config{}, errors.Wrapf(err, "invalid %s %q", portEnv, raw)
	}
	if port < 1 || port > 65535 {
		return Config{}, errors.Errorf("invalid %s %d: out of range", portEnv, port)
	}
	cfg.Port = port

	return cfg, nil
}

// Addr returns the host:port the server listens on
func (c Config) Addr() string {
	return net.JoinHostPort(c.ListenHost, strconv.Itoa(c.Port))
}
