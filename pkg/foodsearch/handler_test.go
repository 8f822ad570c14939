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
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	relayerrors "github.com/foodsearch/relay/pkg/errors"
	"github.com/foodsearch/relay/pkg/fatsecret"
	"github.com/foodsearch/relay/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	body  []byte
	err   error
	calls int
	query string
	ctx   context.Context
}

func (f *fakeSearcher) SearchFoods(ctx context.Context, query string) ([]byte, error) {
	f.calls++
	f.query = query
	f.ctx = ctx
	return f.body, f.err
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var d ErrorDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	return d.Detail
}

func TestHandleSearchFood_PassThrough(t *testing.T) {
	upstream := `{"foods":{"food":[{"food_name":"Apple"}]}}`
	s := &fakeSearcher{body: []byte(upstream)}

	req := httptest.NewRequest(http.MethodGet, "/search-food?query=apple", nil)
	w := httptest.NewRecorder()

	NewHandler(s).HandleSearchFood(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, upstream, w.Body.String())
	assert.Equal(t, "apple", s.query)
}

func TestHandleSearchFood_EmptyQueryForwarded(t *testing.T) {
	s := &fakeSearcher{body: []byte(`{}`)}

	req := httptest.NewRequest(http.MethodGet, "/search-food?query=", nil)
	w := httptest.NewRecorder()

	NewHandler(s).HandleSearchFood(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, s.calls)
	assert.Equal(t, "", s.query)
}

func TestHandleSearchFood_MissingQuery(t *testing.T) {
	s := &fakeSearcher{}

	req := httptest.NewRequest(http.MethodGet, "/search-food", nil)
	w := httptest.NewRecorder()

	NewHandler(s).HandleSearchFood(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "query parameter is required", decodeDetail(t, w))
	assert.Zero(t, s.calls)
}

func TestHandleSearchFood_MethodNotAllowed(t *testing.T) {
	s := &fakeSearcher{}

	req := httptest.NewRequest(http.MethodPost, "/search-food?query=apple", nil)
	w := httptest.NewRecorder()

	NewHandler(s).HandleSearchFood(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodGet, w.Header().Get("Allow"))
	assert.Zero(t, s.calls)
}

func TestHandleSearchFood_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		detailContains string
	}{
		{
			name:           "auth refused",
			err:            &fatsecret.UpstreamAuthError{StatusCode: http.StatusUnauthorized, Body: `"invalid_client"`},
			expectedStatus: http.StatusBadRequest,
			detailContains: "invalid_client",
		},
		{
			name:           "auth refused prefix",
			err:            &fatsecret.UpstreamAuthError{StatusCode: http.StatusUnauthorized, Body: "nope"},
			expectedStatus: http.StatusBadRequest,
			detailContains: "Failed to get access token: nope",
		},
		{
			name:           "search refused",
			err:            &fatsecret.UpstreamSearchError{StatusCode: http.StatusForbidden, Body: `{"error":"bad token"}`},
			expectedStatus: http.StatusBadRequest,
			detailContains: `Failed to fetch food data: {"error":"bad token"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fakeSearcher{err: tt.err}

			req := httptest.NewRequest(http.MethodGet, "/search-food?query=apple", nil)
			w := httptest.NewRecorder()

			NewHandler(s).HandleSearchFood(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, decodeDetail(t, w), tt.detailContains)
		})
	}
}

func TestHandleSearchFood_TransportFailureIsInternal(t *testing.T) {
	s := &fakeSearcher{
		err: relayerrors.Wrap(relayerrors.ErrCodeInternal, "token request failed", errors.New("connection refused")),
	}

	req := httptest.NewRequest(http.MethodGet, "/search-food?query=apple", nil)
	w := httptest.NewRecorder()

	NewHandler(s).HandleSearchFood(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(relayerrors.ErrCodeInternal), resp["code"])
}

func TestHandleSearchFood_AppliesDeadline(t *testing.T) {
	s := &fakeSearcher{body: []byte(`{}`)}

	req := httptest.NewRequest(http.MethodGet, "/search-food?query=apple", nil)
	w := httptest.NewRecorder()

	NewHandler(s).HandleSearchFood(w, req)

	require.NotNil(t, s.ctx)
	deadline, ok := s.ctx.Deadline()
	require.True(t, ok, "expected a deadline on the upstream context")
	assert.WithinDuration(t, time.Now(), deadline, 31*time.Second)
}

func TestHandleSearchFood_ReportsOutcome(t *testing.T) {
	tests := []struct {
		name    string
		body    []byte
		err     error
		outcome string
	}{
		{"relayed", []byte(`{}`), nil, OutcomeRelayed},
		{"auth rejected", nil, &fatsecret.UpstreamAuthError{StatusCode: http.StatusUnauthorized}, OutcomeAuthRejected},
		{"search rejected", nil, &fatsecret.UpstreamSearchError{StatusCode: http.StatusForbidden}, OutcomeSearchRejected},
		{"upstream error", nil, relayerrors.New(relayerrors.ErrCodeInternal, "token request failed"), OutcomeUpstreamError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeSearcher{body: tt.body, err: tt.err})
			srv := server.New(server.WithHandler(map[string]http.HandlerFunc{
				"/search-food": h.HandleSearchFood,
			}))

			srv.Handler().ServeHTTP(httptest.NewRecorder(),
				httptest.NewRequest(http.MethodGet, "/search-food?query=apple", nil))

			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

			found := false
			for _, line := range strings.Split(w.Body.String(), "\n") {
				if strings.HasPrefix(line, "foodrelay_http_requests_total{") &&
					strings.Contains(line, `path="/search-food"`) &&
					strings.Contains(line, `outcome="`+tt.outcome+`"`) {
					found = true
					break
				}
			}
			assert.True(t, found, "expected a request counter with outcome %q", tt.outcome)
		})
	}
}
