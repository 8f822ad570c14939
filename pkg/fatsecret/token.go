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
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	relayerrors "github.com/foodsearch/relay/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// TokenAcquirer exchanges client credentials for a bearer token.
// Every call performs a fresh grant; tokens are never cached.
type TokenAcquirer struct {
	config clientcredentials.Config
	client *http.Client
}

// NewTokenAcquirer returns a TokenAcquirer posting to tokenURL with HTTP Basic
// client authentication. A nil client falls back to http.DefaultClient.
func NewTokenAcquirer(creds Credentials, tokenURL string, client *http.Client) *TokenAcquirer {
	if client == nil {
		client = http.DefaultClient
	}
	return &TokenAcquirer{
		config: clientcredentials.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			TokenURL:     tokenURL,
			Scopes:       []string{Scope},
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
		client: client,
	}
}

// AccessToken performs a client-credentials grant and returns the access token.
//
// Any status other than 200, or a 200 without a usable access_token, yields
// *UpstreamAuthError. A failure to reach the server or to read its answer
// yields a StructuredError.
func (a *TokenAcquirer) AccessToken(ctx context.Context) (string, error) {
	start := time.Now()

	ex := &tokenExchange{base: a.client.Transport}
	if ex.base == nil {
		ex.base = http.DefaultTransport
	}
	hc := *a.client
	hc.Transport = ex

	// Config.Token (unlike Config.TokenSource) never reuses a previous token.
	tok, err := a.config.Token(context.WithValue(ctx, oauth2.HTTPClient, &hc))
	if err != nil {
		return "", a.classify(err, ex, start)
	}

	// oauth2 accepts any 2xx; the grant only counts when the server says 200.
	if ex.status != http.StatusOK {
		observe(endpointToken, outcomeRejected, ex.status, start)
		slog.Warn("authorization server answered with unexpected status", "status", ex.status)
		return "", &UpstreamAuthError{StatusCode: ex.status, Body: ex.body.String()}
	}

	observe(endpointToken, outcomeSuccess, http.StatusOK, start)
	slog.Debug("access token acquired", "tokenType", tok.TokenType)

	return tok.AccessToken, nil
}

func (a *TokenAcquirer) classify(err error, ex *tokenExchange, start time.Time) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		status := 0
		if re.Response != nil {
			status = re.Response.StatusCode
		}
		observe(endpointToken, outcomeRejected, status, start)
		slog.Warn("authorization server rejected token request", "status", status)
		return &UpstreamAuthError{StatusCode: status, Body: string(re.Body)}
	}

	// oauth2 flattens body read failures into plain text, so the exchange
	// keeps the original error.
	if ex.readErr != nil {
		observe(endpointToken, outcomeTransport, ex.status, start)
		return relayerrors.WrapWithContext(relayerrors.ErrCodeInternal, "token response read failed", ex.readErr,
			map[string]any{"url": a.config.TokenURL})
	}

	if isTransportError(err) {
		observe(endpointToken, outcomeTransport, 0, start)
		return relayerrors.WrapWithContext(relayerrors.ErrCodeInternal, "token request failed", err,
			map[string]any{"url": a.config.TokenURL})
	}

	// The server answered 2xx but the body held no usable token.
	observe(endpointToken, outcomeRejected, ex.status, start)
	slog.Warn("authorization server returned unusable token response", "status", ex.status, "error", err)
	return &UpstreamAuthError{StatusCode: ex.status, Body: err.Error()}
}

// tokenExchange records the final response of a single token request: its
// status, its body as read by oauth2, and any error hit while reading it.
// It serves exactly one grant and is not shared between requests.
type tokenExchange struct {
	base http.RoundTripper

	status  int
	body    bytes.Buffer
	readErr error
}

func (t *tokenExchange) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// Redirects reach here again; only the last response matters.
	t.status = resp.StatusCode
	t.body.Reset()
	t.readErr = nil
	resp.Body = &recordingBody{ReadCloser: resp.Body, ex: t}

	return resp, nil
}

type recordingBody struct {
	io.ReadCloser
	ex *tokenExchange
}

func (b *recordingBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	b.ex.body.Write(p[:n])
	if err != nil && !errors.Is(err, io.EOF) {
		b.ex.readErr = err
	}
	return n, err
}
