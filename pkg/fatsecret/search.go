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

package fatsecret

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	relayerrors "github.com/foodsearch/relay/pkg/errors"
)

// SearchClient issues foods.search calls against the REST API.
type SearchClient struct {
	searchURL string
	client    *http.Client
}

// NewSearchClient returns a SearchClient for searchURL. A nil client falls
// back to http.DefaultClient.
func NewSearchClient(searchURL string, client *http.Client) *SearchClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &SearchClient{
		searchURL: searchURL,
		client:    client,
	}
}

// SearchFoods runs a food search for query using the bearer token and returns
// the upstream JSON body unmodified. The query is forwarded verbatim, empty
// strings included.
func (c *SearchClient) SearchFoods(ctx context.Context, token, query string) ([]byte, error) {
	u, err := c.requestURL(query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, relayerrors.Wrap(relayerrors.ErrCodeInternal, "failed to create search request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		observe(endpointSearch, outcomeTransport, 0, start)
		return nil, relayerrors.WrapWithContext(relayerrors.ErrCodeInternal, "search request failed", err,
			map[string]any{"url": c.searchURL})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observe(endpointSearch, outcomeTransport, resp.StatusCode, start)
		return nil, relayerrors.Wrap(relayerrors.ErrCodeInternal, "failed to read search response", err)
	}

	if resp.StatusCode != http.StatusOK {
		observe(endpointSearch, outcomeRejected, resp.StatusCode, start)
		slog.Warn("search endpoint rejected request", "status", resp.StatusCode)
		return nil, &UpstreamSearchError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	observe(endpointSearch, outcomeSuccess, resp.StatusCode, start)
	return body, nil
}

func (c *SearchClient) requestURL(query string) (string, error) {
	u, err := url.Parse(c.searchURL)
	if err != nil {
		return "", relayerrors.Wrap(relayerrors.ErrCodeInternal,
			fmt.Sprintf("invalid search url %q", c.searchURL), err)
	}

	q := u.Query()
	q.Set("method", searchMethod)
	q.Set("format", searchFormat)
	q.Set("search_expression", query)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// isTransportError reports whether err came from the HTTP client rather than
// from an upstream response.
func isTransportError(err error) bool {
	var ue *url.Error
	return errors.As(err, &ue) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
