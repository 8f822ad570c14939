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

package server

import (
	"net/http"
	"time"

	relayerrors "github.com/foodsearch/relay/pkg/errors"
	"github.com/foodsearch/relay/pkg/serializer"
)

// HealthResponse is returned by /health and /ready.
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason,omitempty"`
}

func (s *Server) healthResponse(status string) HealthResponse {
	return HealthResponse{
		Status:    status,
		Service:   s.config.Name,
		Version:   s.config.Version,
		Timestamp: time.Now().UTC(),
	}
}

// requireGet answers non-GET requests with a structured 405 and reports
// whether the caller should continue.
func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	WriteError(w, r, http.StatusMethodNotAllowed, relayerrors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, nil)
	return false
}

// handleHealth reports liveness. It never touches the upstream provider.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, s.healthResponse("healthy"))
}

// handleReady reports whether the listener is accepting relay traffic.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	if !s.isReady() {
		resp := s.healthResponse("not_ready")
		resp.Reason = "relay is starting or shutting down"
		serializer.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, s.healthResponse("ready"))
}
