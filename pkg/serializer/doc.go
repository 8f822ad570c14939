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

// Package serializer writes HTTP JSON responses.
//
// RespondJSON encodes a value and only then commits the status line, so an
// encoding failure becomes a clean 500 instead of a truncated body.
// RespondRawJSON relays bytes that are already JSON, such as an upstream
// payload that must reach the caller untouched.
package serializer
