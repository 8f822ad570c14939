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

// Package foodsearch exposes the food search relay over HTTP.
//
//	GET /search-food?query=apple
//
// On success the provider's JSON is returned unchanged with 200. When the
// authorization server or the search endpoint refuses the request the
// response is 400 with {"detail": "..."} carrying the upstream body. A
// missing query parameter is rejected with 422; an empty one is forwarded.
package foodsearch
