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
	"net/http"
)

// TokenProvider yields a bearer token for a single search.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// Option configures a Client.
type Option func(*Client)

// WithTokenURL overrides the authorization endpoint.
func WithTokenURL(u string) Option {
	return func(c *Client) {
		c.tokenURL = u
	}
}

// WithSearchURL overrides the search endpoint.
func WithSearchURL(u string) Option {
	return func(c *Client) {
		c.searchURL = u
	}
}

// WithHTTPClient sets the client used for both outbound calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTokenProvider replaces the client-credentials grant.
func WithTokenProvider(tp TokenProvider) Option {
	return func(c *Client) {
		c.tokens = tp
	}
}

// Client relays food searches: acquire a token, then search with it.
// It holds only read-only configuration and is safe for concurrent use.
type Client struct {
	tokenURL   string
	searchURL  string
	httpClient *http.Client

	tokens TokenProvider
	search *SearchClient
}

// NewClient returns a Client authenticating with creds.
func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		tokenURL:   DefaultTokenURL,
		searchURL:  DefaultSearchURL,
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.tokens == nil {
		c.tokens = NewTokenAcquirer(creds, c.tokenURL, c.httpClient)
	}
	c.search = NewSearchClient(c.searchURL, c.httpClient)

	return c
}

// SearchFoods acquires a fresh token and runs the search with it. A token
// failure is returned as is and the search endpoint is not called.
func (c *Client) SearchFoods(ctx context.Context, query string) ([]byte, error) {
	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	return c.search.SearchFoods(ctx, token, query)
}
