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

package httpclient

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	c := New()

	if c.Timeout != DefaultTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultTimeout, c.Timeout)
	}

	ua, ok := c.Transport.(*userAgentTransport)
	if !ok {
		t.Fatalf("expected *userAgentTransport, got %T", c.Transport)
	}
	if ua.userAgent != DefaultUserAgent {
		t.Errorf("expected user agent %q, got %q", DefaultUserAgent, ua.userAgent)
	}

	tr, ok := ua.base.(*http.Transport)
	if !ok {
		t.Fatalf("expected *http.Transport, got %T", ua.base)
	}
	if tr.MaxIdleConns != DefaultMaxIdleConns {
		t.Errorf("expected MaxIdleConns %d, got %d", DefaultMaxIdleConns, tr.MaxIdleConns)
	}
	if tr.TLSClientConfig == nil || tr.TLSClientConfig.MinVersion != tls.VersionTLS12 {
		t.Error("expected TLS 1.2 minimum")
	}
}

func TestNew_WithOptions(t *testing.T) {
	c := New(
		WithUserAgent("test-agent"),
		WithTotalTimeout(3*time.Second),
	)

	if c.Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %v", c.Timeout)
	}

	ua := c.Transport.(*userAgentTransport)
	if ua.userAgent != "test-agent" {
		t.Errorf("expected user agent test-agent, got %q", ua.userAgent)
	}

	tr := ua.base.(*http.Transport)
	if tr.TLSHandshakeTimeout != DefaultTLSHandshakeTimeout {
		t.Errorf("expected TLS handshake timeout %v, got %v", DefaultTLSHandshakeTimeout, tr.TLSHandshakeTimeout)
	}
	if tr.ResponseHeaderTimeout != DefaultResponseHeaderTimeout {
		t.Errorf("expected response header timeout %v, got %v", DefaultResponseHeaderTimeout, tr.ResponseHeaderTimeout)
	}
	if tr.MaxIdleConnsPerHost != DefaultMaxIdleConnsPerHost {
		t.Errorf("expected MaxIdleConnsPerHost %d, got %d", DefaultMaxIdleConnsPerHost, tr.MaxIdleConnsPerHost)
	}
}

func TestWithTotalTimeout_IgnoresNonPositive(t *testing.T) {
	if c := New(WithTotalTimeout(0)); c.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout %v, got %v", DefaultTimeout, c.Timeout)
	}
}

func TestNew_SetsUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.UserAgent()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := New(WithUserAgent("relay-test/1.0")).Get(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()

	if got != "relay-test/1.0" {
		t.Errorf("expected User-Agent relay-test/1.0, got %q", got)
	}
}

func TestNew_KeepsCallerUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.UserAgent()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	req.Header.Set("User-Agent", "caller")

	resp, err := New().Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()

	if got != "caller" {
		t.Errorf("expected caller User-Agent to be preserved, got %q", got)
	}
}
