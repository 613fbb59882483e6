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

// Package defaults provides centralized configuration constants for the demo service.
//
// This package defines timeout values, ports, queue sizes, and presentation
// limits used across the codebase. Centralizing these values ensures consistency
// and makes tuning easier.
//
// # Categories
//
//   - Outbound API defaults: base URL, fetch timeout, user agent
//   - Server timeouts: For HTTP server configuration
//   - HTTP client timeouts: For outbound HTTP connections
//   - Job queue defaults: For cycles triggered through /api
//   - Presentation limits: Planet thresholds, starship and vehicle caps
//
// # Usage
//
//	import "github.com/NVIDIA/swapi-demo/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.FetchTimeout)
//	defer cancel()
package defaults
