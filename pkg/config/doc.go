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

// Package config loads the relay's process-wide configuration.
//
// Values come from the environment, optionally seeded by a dotenv file in
// the working directory:
//
//	FATSECRET_CLIENT_ID=...
//	FATSECRET_CLIENT_SECRET=...
//
// Variables already present in the environment win over the file. The
// resulting Config is immutable and is passed explicitly to the components
// that need it.
package config
