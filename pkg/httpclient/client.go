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
	"net"
	"net/http"
	"time"

	"github.com/foodsearch/relay/pkg/defaults"
)

const (
	DefaultUserAgent = "FoodSearchRelay/1.0"
)

var (
	DefaultTimeout               = defaults.HTTPClientTimeout
	DefaultKeepAlive             = defaults.HTTPKeepAlive
	DefaultConnectTimeout        = defaults.HTTPConnectTimeout
	DefaultTLSHandshakeTimeout   = defaults.HTTPTLSHandshakeTimeout
	DefaultResponseHeaderTimeout = defaults.HTTPResponseHeaderTimeout
	DefaultIdleConnTimeout       = defaults.HTTPIdleConnTimeout
	DefaultMaxIdleConns          = 100
	DefaultMaxIdleConnsPerHost   = 10
)

// Option defines a configuration option for the outbound client.
type Option func(*settings)

type settings struct {
	userAgent    string
	totalTimeout time.Duration
}

// WithUserAgent sets the User-Agent stamped on requests that carry none.
func WithUserAgent(userAgent string) Option {
	return func(s *settings) {
		s.userAgent = userAgent
	}
}

// WithTotalTimeout bounds a whole request, body read included.
func WithTotalTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		if timeout > 0 {
			s.totalTimeout = timeout
		}
	}
}

// New returns an *http.Client for calls to the upstream provider. The client
// is safe for concurrent use and holds no per-request state.
func New(options ...Option) *http.Client {
	s := &settings{
		userAgent:    DefaultUserAgent,
		totalTimeout: DefaultTimeout,
	}

	for _, opt := range options {
		opt(s)
	}

	return &http.Client{
		Timeout: s.totalTimeout,
		Transport: &userAgentTransport{
			userAgent: s.userAgent,
			base:      newTransport(),
		},
	}
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,

		// Connection pooling
		MaxIdleConns:        DefaultMaxIdleConns,
		MaxIdleConnsPerHost: DefaultMaxIdleConnsPerHost,

		// Timeouts
		DialContext: (&net.Dialer{
			Timeout:   DefaultConnectTimeout,
			KeepAlive: DefaultKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   DefaultTLSHandshakeTimeout,
		ResponseHeaderTimeout: DefaultResponseHeaderTimeout,
		ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,

		// Connection reuse
		IdleConnTimeout:   DefaultIdleConnTimeout,
		ForceAttemptHTTP2: true,

		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

// userAgentTransport stamps a User-Agent on requests that don't carry one.
type userAgentTransport struct {
	userAgent string
	base      http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent == "" || req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}
	// RoundTrippers must not modify the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(clone)
}
