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

import "fmt"

// UpstreamAuthError reports that the authorization server refused to issue a
// token. Body is the upstream response body, verbatim.
type UpstreamAuthError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamAuthError) Error() string {
	return fmt.Sprintf("Failed to get access token: %s", e.Body)
}

// UpstreamSearchError reports a non-200 response from the search endpoint.
// Body is the upstream response body, verbatim.
type UpstreamSearchError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamSearchError) Error() string {
	return fmt.Sprintf("Failed to fetch food data: %s", e.Body)
}
