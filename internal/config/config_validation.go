// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// supportedDSNPrefixes lists the DSN forms the store package can open.
var supportedDSNPrefixes = []string{
	"postgres://",
	"postgresql://",
	"sqlite://",
	"file:",
	"memory",
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. It runs after defaults are applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no listen address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if !isSupportedDSN(cfg.Storage.DB.DSN) {
		return fmt.Errorf("%w: unsupported DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Security.HSTSSeconds < 0 {
		return fmt.Errorf("%w: negative HSTS max-age", ErrInvalidSecurityConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func isSupportedDSN(dsn string) bool {
	for _, prefix := range supportedDSNPrefixes {
		if strings.HasPrefix(dsn, prefix) {
			return true
		}
	}
	return false
}
