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

const (
	// DefaultTokenURL is the FatSecret OAuth 2.0 token endpoint.
	DefaultTokenURL = "https://oauth.fatsecret.com/connect/token"

	// DefaultSearchURL is the FatSecret REST API endpoint.
	DefaultSearchURL = "https://platform.fatsecret.com/rest/server.api"

	// Scope is the OAuth scope requested on every grant.
	Scope = "basic"
)

// Fixed parameters of the food search call.
const (
	searchMethod = "foods.search"
	searchFormat = "json"
)

// Credentials identify the relay to the authorization server.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// IsSet reports whether both the client id and secret are non-empty.
func (c Credentials) IsSet() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}
