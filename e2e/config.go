package e2e

import "github.com/kelseyhightower/envconfig"

// Config for the end-to-end suite. ServerAddr empty means the suite
// is skipped: these tests need a running cinema-lab server.
type Config struct {
	ServerAddr string `envconfig:"E2E_SERVER_ADDR"`
	Colours    bool   `envconfig:"E2E_COLOURS" default:"true"`
	DebugJSON  bool   `envconfig:"E2E_DEBUG_JSON" default:"false"`
}

func LoadConfig() (Config, error) {
	var config Config
	err := envconfig.Process("", &config)
	return config, err
}
