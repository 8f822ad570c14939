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

// Package server provides the HTTP host for the food search relay.
//
// # Architecture
//
// The server is stateless. Every API route is wrapped with a shared
// middleware chain:
//
//   - Prometheus RED metrics (github.com/prometheus/client_golang)
//   - X-API-Version and X-Relay-Version response headers
//   - Request ID tracking (X-Request-Id, github.com/google/uuid)
//   - Panic recovery
//   - Inbound rate limiting, token bucket (golang.org/x/time/rate)
//   - Request logging (log/slog)
//
// Handlers report how their upstream call ended with SetOutcome. The value
// is logged as upstreamOutcome on the completion line and becomes the
// outcome label of foodrelay_http_requests_total.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("relayd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/search-food": h.HandleSearchFood,
//	    }),
//	)
//
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run listens on Config.Address:Config.Port (127.0.0.1:8000 by default)
// and shuts down gracefully on SIGINT or SIGTERM.
//
// # System Endpoints
//
// GET /health - Liveness, always 200 {"status": "healthy", ...}
//
// GET /ready - Readiness, 200 while serving and 503 otherwise
//
// GET /metrics - Prometheus exposition
//
// GET / - Service name, version and route list. Unknown paths get 404.
//
// # Rate Limiting
//
//	X-RateLimit-Limit: Total requests allowed per second
//	X-RateLimit-Remaining: Tokens left in the bucket
//	X-RateLimit-Reset: Unix timestamp when the window resets
//
// When rate limited, returns 429 with Retry-After header.
//
// # Error Handling
//
// Infrastructure errors share one JSON structure:
//
//	{
//	  "code": "RATE_LIMIT_EXCEEDED",
//	  "message": "Rate limit exceeded",
//	  "details": {"limit": 100, "burst": 200},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": true
//	}
//
// WriteErrorFromErr derives status, code and details from a
// pkg/errors.StructuredError.
package server
