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

// Package api wires and runs the food search relay.
//
// # Usage
//
//	import (
//	    "log"
//	    "github.com/foodsearch/relay/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Loading configuration once at startup (pkg/config)
//   - Configuring structured logging with application name and version
//   - Building the upstream client (pkg/fatsecret over pkg/httpclient)
//   - Registering the /search-food handler (pkg/foodsearch)
//   - Delegating server lifecycle management to pkg/server
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET /search-food?query=<text> - Relay a food search
//
// System Endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
//	FATSECRET_CLIENT_ID=... FATSECRET_CLIENT_SECRET=... relayd
//	curl "http://127.0.0.1:8000/search-food?query=apple"
//
// A .env file in the working directory is read when present.
package api
