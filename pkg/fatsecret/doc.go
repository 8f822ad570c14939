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

// Package fatsecret talks to the FatSecret platform: an OAuth 2.0
// client-credentials grant against the authorization server, then a
// bearer-authenticated foods.search call against the REST API.
//
// Nothing is cached between calls. Each Client.SearchFoods performs both
// outbound requests, in order, and returns the search body untouched.
//
//	c := fatsecret.NewClient(creds, fatsecret.WithHTTPClient(httpclient.New()))
//	body, err := c.SearchFoods(ctx, "apple")
//
// Upstream refusals are reported as *UpstreamAuthError and
// *UpstreamSearchError, both carrying the upstream status and body.
package fatsecret
