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

package foodsearch

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/foodsearch/relay/pkg/defaults"
	"github.com/foodsearch/relay/pkg/fatsecret"
	"github.com/foodsearch/relay/pkg/serializer"
	"github.com/foodsearch/relay/pkg/server"
)

// QueryParam is the name of the free-text search parameter.
const QueryParam = "query"

// Upstream outcomes reported to the server middleware.
const (
	OutcomeRelayed        = "relayed"
	OutcomeAuthRejected   = "auth_rejected"
	OutcomeSearchRejected = "search_rejected"
	OutcomeUpstreamError  = "upstream_error"
)

// Searcher runs a food search and returns the provider's JSON body.
type Searcher interface {
	SearchFoods(ctx context.Context, query string) ([]byte, error)
}

// ErrorDetail is the body of client-facing errors.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// Handler serves GET /search-food.
type Handler struct {
	searcher Searcher
	timeout  time.Duration
}

// NewHandler returns a Handler backed by s.
func NewHandler(s Searcher) *Handler {
	return &Handler{
		searcher: s,
		timeout:  defaults.SearchHandlerTimeout,
	}
}

// HandleSearchFood relays the query to the provider and writes its JSON
// response verbatim. Upstream refusals become 400 with a detail message;
// anything else is an internal error.
func (h *Handler) HandleSearchFood(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		serializer.RespondJSON(w, http.StatusMethodNotAllowed, ErrorDetail{Detail: "Method Not Allowed"})
		return
	}

	values := r.URL.Query()
	if _, ok := values[QueryParam]; !ok {
		serializer.RespondJSON(w, http.StatusUnprocessableEntity,
			ErrorDetail{Detail: "query parameter is required"})
		return
	}
	query := values.Get(QueryParam)

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	body, err := h.searcher.SearchFoods(ctx, query)
	if err != nil {
		h.writeSearchError(w, r, err)
		return
	}

	server.SetOutcome(r.Context(), OutcomeRelayed)
	serializer.RespondRawJSON(w, http.StatusOK, body)
}

func (h *Handler) writeSearchError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *fatsecret.UpstreamAuthError
	var searchErr *fatsecret.UpstreamSearchError

	switch {
	case errors.As(err, &authErr):
		server.SetOutcome(r.Context(), OutcomeAuthRejected)
		slog.Warn("token acquisition failed",
			"requestID", server.RequestID(r.Context()),
			"status", authErr.StatusCode)
		serializer.RespondJSON(w, http.StatusBadRequest, ErrorDetail{Detail: authErr.Error()})
	case errors.As(err, &searchErr):
		server.SetOutcome(r.Context(), OutcomeSearchRejected)
		slog.Warn("food search failed",
			"requestID", server.RequestID(r.Context()),
			"status", searchErr.StatusCode)
		serializer.RespondJSON(w, http.StatusBadRequest, ErrorDetail{Detail: searchErr.Error()})
	default:
		server.SetOutcome(r.Context(), OutcomeUpstreamError)
		slog.Error("food search relay failed",
			"requestID", server.RequestID(r.Context()),
			"error", err)
		server.WriteErrorFromErr(w, r, err, "food search failed", nil)
	}
}
