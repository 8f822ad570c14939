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

// Package defaults provides centralized configuration constants for the relay.
//
// Timeouts are organized by component:
//
//   - Handler timeouts: For inbound HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - HTTP client timeouts: For outbound calls to the token and search endpoints
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(r.Context(), defaults.SearchHandlerTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
//   - HTTP handlers: 30s per search (token grant plus search call)
//   - Outbound calls: 15s total each, 5s to connect
//   - Server shutdown: 30s for graceful shutdown
package defaults
