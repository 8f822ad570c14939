// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/foodsearch/relay/pkg/defaults"
	"github.com/foodsearch/relay/pkg/fatsecret"
	"github.com/spf13/viper"
)

// Environment keys recognized by Load. The same keys may appear in the
// optional dotenv file.
const (
	KeyClientID        = "FATSECRET_CLIENT_ID"
	KeyClientSecret    = "FATSECRET_CLIENT_SECRET"
	KeyTokenURL        = "FATSECRET_TOKEN_URL"
	KeySearchURL       = "FATSECRET_SEARCH_URL"
	KeyAddress         = "ADDRESS"
	KeyPort            = "PORT"
	KeyLogLevel        = "LOG_LEVEL"
	KeyShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
	KeyUpstreamTimeout = "UPSTREAM_TIMEOUT_SECONDS"
)

const (
	// DefaultEnvFile is the dotenv file read from the working directory when present.
	DefaultEnvFile = ".env"

	DefaultAddress  = "127.0.0.1"
	DefaultPort     = 8000
	DefaultLogLevel = "info"
)

// Config is the process-wide configuration. It is loaded once at startup
// and never mutated afterwards.
type Config struct {
	Credentials fatsecret.Credentials

	TokenURL  string
	SearchURL string

	Address         string
	Port            int
	LogLevel        string
	ShutdownTimeout time.Duration

	// UpstreamTimeout bounds each call to the token and search endpoints.
	UpstreamTimeout time.Duration
}

// Load reads configuration from envFile (skipped when it does not exist)
// and the process environment. Environment variables take precedence over
// the file. Credentials are not validated; a missing value surfaces later
// as an authorization failure.
func Load(envFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyTokenURL, fatsecret.DefaultTokenURL)
	v.SetDefault(KeySearchURL, fatsecret.DefaultSearchURL)
	v.SetDefault(KeyAddress, DefaultAddress)
	v.SetDefault(KeyPort, DefaultPort)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyShutdownTimeout, int(defaults.ServerShutdownTimeout/time.Second))
	v.SetDefault(KeyUpstreamTimeout, int(defaults.HTTPClientTimeout/time.Second))

	v.AutomaticEnv()

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading env file %s: %w", envFile, err)
			}
		}
	}

	cfg := &Config{
		Credentials: fatsecret.Credentials{
			ClientID:     v.GetString(KeyClientID),
			ClientSecret: v.GetString(KeyClientSecret),
		},
		TokenURL:        v.GetString(KeyTokenURL),
		SearchURL:       v.GetString(KeySearchURL),
		Address:         v.GetString(KeyAddress),
		Port:            v.GetInt(KeyPort),
		LogLevel:        v.GetString(KeyLogLevel),
		ShutdownTimeout: time.Duration(v.GetInt(KeyShutdownTimeout)) * time.Second,
		UpstreamTimeout: time.Duration(v.GetInt(KeyUpstreamTimeout)) * time.Second,
	}

	// Unparseable numbers fall back to defaults rather than failing startup.
	if cfg.Port <= 0 {
		cfg.Port = DefaultPort
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaults.ServerShutdownTimeout
	}
	if cfg.UpstreamTimeout <= 0 {
		cfg.UpstreamTimeout = defaults.HTTPClientTimeout
	}

	return cfg, nil
}
