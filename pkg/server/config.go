package server

import (
	"time"

	"github.com/spf13/viper"
)

const (
	configListenAddress   = "listen_address"
	configReadTimeout     = "read_timeout"
	configWriteTimeout    = "write_timeout"
	configShutdownTimeout = "shutdown_timeout"
)

// Config holds the HTTP server settings.
type Config struct {
	ListenAddress   string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// LoadConfig resolves the server configuration from viper, which the caller
// has already pointed at an optional config file and the environment.
func LoadConfig() Config {
	viper.SetDefault(configListenAddress, "127.0.0.1:3000")
	viper.SetDefault(configReadTimeout, 10*time.Second)
	viper.SetDefault(configWriteTimeout, 10*time.Second)
	viper.SetDefault(configShutdownTimeout, 15*time.Second)

	return Config{
		ListenAddress:   viper.GetString(configListenAddress),
		ReadTimeout:     viper.GetDuration(configReadTimeout),
		WriteTimeout:    viper.GetDuration(configWriteTimeout),
		ShutdownTimeout: viper.GetDuration(configShutdownTimeout),
	}
}
