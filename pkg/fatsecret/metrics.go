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
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Endpoint labels.
const (
	endpointToken  = "token"
	endpointSearch = "search"
)

// Outcome labels.
const (
	outcomeSuccess   = "success"
	outcomeRejected  = "rejected"
	outcomeTransport = "transport_error"
)

var (
	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodrelay_upstream_requests_total",
			Help: "Total number of calls to the upstream provider",
		},
		[]string{"endpoint", "outcome", "status"},
	)

	upstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodrelay_upstream_request_duration_seconds",
			Help:    "Upstream call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// observe records a single upstream call. A zero status means no response
// was received.
func observe(endpoint, outcome string, status int, start time.Time) {
	upstreamRequestsTotal.WithLabelValues(endpoint, outcome, strconv.Itoa(status)).Inc()
	upstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
