package config

import (
	"flag"
	"fmt"
	"time"
)

// Client defaults.
const (
	DefaultAdapterAddress = "http://localhost:8080"
	DefaultAdapterTimeout = 10 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the account service.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Verbose enables debug logging of outbound requests.
	Verbose bool
}

// GetClientConfig builds and validates the client configuration from
// ADAPTER_* environment variables and the -a, -timeout and -v flags in args.
//
// Flag parsing stops at the first non-flag argument; the remaining arguments
// (the client sub-command and its operands) are returned as rest.
func GetClientConfig(args []string) (cfg *ClientConfig, rest []string, err error) {
	envCfg := &StructuredConfig{}
	if err = parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	cfg = &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    envCfg.Adapter.HTTPAddress,
			RequestTimeout: envCfg.Adapter.RequestTimeout,
		},
	}

	var address string
	var timeout time.Duration

	fs := flag.NewFlagSet("account-client", flag.ContinueOnError)
	fs.StringVar(&address, "a", "", "Account service address (e.g. http://localhost:8080)")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 5s)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Log requests and responses to stderr")
	if err = fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if address != "" {
		cfg.Adapter.HTTPAddress = address
	}
	if timeout != 0 {
		cfg.Adapter.RequestTimeout = timeout
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}

	return cfg, fs.Args(), cfg.validate()
}
