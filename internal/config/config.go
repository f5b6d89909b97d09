// Package config wires the two configuration values the addon needs through
// viper's environment bindings.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	// KeyUpstreamURL is the base URL of the upstream listing API. Required.
	KeyUpstreamURL = "upstream.url"
	// KeyPort is the port the addon listens on.
	KeyPort = "port"
)

const envPrefix = "zannime"

// Setup registers env bindings (ZANNIME_UPSTREAM_URL, ZANNIME_PORT) and
// defaults.
func Setup() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyPort, "7000")
}

func UpstreamURL() string {
	return viper.GetString(KeyUpstreamURL)
}

func Port() string {
	return viper.GetString(KeyPort)
}
