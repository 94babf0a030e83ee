package supervisor

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every supervisor setting, e.g. SUPERVISOR_API_COMMAND
const EnvPrefix = "SUPERVISOR"

type Config struct {
	APICommand string   `envconfig:"API_COMMAND" default:"./bin/api"`
	APIArgs    []string `envconfig:"API_ARGS" default:"serve"`
	APIURL     string   `envconfig:"API_URL" default:"http://localhost:5000"`

	// The auxiliary server is optional; an empty command disables it
	AuxName    string   `envconfig:"AUX_NAME" default:"blog"`
	AuxCommand string   `envconfig:"AUX_COMMAND"`
	AuxArgs    []string `envconfig:"AUX_ARGS"`
	AuxDir     string   `envconfig:"AUX_DIR"`
	AuxURL     string   `envconfig:"AUX_URL" default:"http://localhost:5001"`

	SetupArgs     []string `envconfig:"SETUP_ARGS" default:"migrate"`
	RequiredPaths []string `envconfig:"REQUIRED_PATHS"`

	SetupTimeout time.Duration `envconfig:"SETUP_TIMEOUT" default:"30s"`
	StartDelay   time.Duration `envconfig:"START_DELAY" default:"2s"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"2s"`
	StopGrace    time.Duration `envconfig:"STOP_GRACE" default:"10s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads SUPERVISOR_* environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read supervisor environment: %w", err)
	}
	return &cfg, nil
}

// Specs derives the setup step and the servers to run, in start order.
func (c *Config) Specs() (setup ProcessSpec, servers []ProcessSpec) {
	setup = ProcessSpec{
		Name:    "db_setup",
		Command: c.APICommand,
		Args:    c.SetupArgs,
	}

	servers = append(servers, ProcessSpec{
		Name:    "api",
		Command: c.APICommand,
		Args:    c.APIArgs,
		URL:     c.APIURL,
	})
	if c.AuxCommand != "" {
		servers = append(servers, ProcessSpec{
			Name:    c.AuxName,
			Command: c.AuxCommand,
			Args:    c.AuxArgs,
			Dir:     c.AuxDir,
			URL:     c.AuxURL,
		})
	}
	return setup, servers
}
