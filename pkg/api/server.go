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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/foodsearch/relay/pkg/config"
	"github.com/foodsearch/relay/pkg/fatsecret"
	"github.com/foodsearch/relay/pkg/foodsearch"
	"github.com/foodsearch/relay/pkg/httpclient"
	"github.com/foodsearch/relay/pkg/logging"
	"github.com/foodsearch/relay/pkg/server"
)

const (
	name           = "food-search-relay"
	versionDefault = "dev"

	// SearchFoodPath is the relay's only API route.
	SearchFoodPath = "/search-food"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/foodsearch/relay/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It loads configuration, configures logging, sets up routes, and handles
// graceful shutdown. Returns an error if the server fails to start or
// encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	if !cfg.Credentials.IsSet() {
		slog.Warn("client credentials are not fully configured, token requests will be rejected",
			"clientIDSet", cfg.Credentials.ClientID != "",
			"clientSecretSet", cfg.Credentials.ClientSecret != "")
	}

	s := NewServer(cfg, newUpstreamClient(cfg))

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// NewServer wires the relay for cfg. Both upstream calls go through hc.
// newUpstreamClient builds the client shared by the token and search calls.
func newUpstreamClient(cfg *config.Config) *http.Client {
	return httpclient.New(
		httpclient.WithUserAgent(name+"/"+version),
		httpclient.WithTotalTimeout(cfg.UpstreamTimeout),
	)
}

func NewServer(cfg *config.Config, hc *http.Client) *server.Server {
	client := fatsecret.NewClient(cfg.Credentials,
		fatsecret.WithTokenURL(cfg.TokenURL),
		fatsecret.WithSearchURL(cfg.SearchURL),
		fatsecret.WithHTTPClient(hc),
	)

	h := foodsearch.NewHandler(client)

	sc := server.NewConfig()
	sc.Name = name
	sc.Version = version
	sc.Address = cfg.Address
	sc.Port = cfg.Port
	sc.ShutdownTimeout = cfg.ShutdownTimeout

	return server.New(
		server.WithConfig(sc),
		server.WithHandler(map[string]http.HandlerFunc{
			SearchFoodPath: h.HandleSearchFood,
		}),
	)
}
