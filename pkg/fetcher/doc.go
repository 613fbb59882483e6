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

// Package fetcher performs single, timeout-bounded HTTP GET requests.
//
// A Reader resolves with the full response body when the remote answers with
// a status below 400, and fails with a structured error otherwise:
//
//   - errors.ErrCodeHTTPStatus: the remote answered 400 or above
//   - errors.ErrCodeTimeout: the request outlived the configured timeout
//   - errors.ErrCodeNetwork: DNS, connection or TLS failure
//
// Each request runs under its own context deadline, so a timed out request is
// aborted rather than left in flight. Keep-alives are disabled and certificate
// validation is strict unless WithInsecureSkipVerify(true) is given.
//
// Usage:
//
//	r := fetcher.NewReader(fetcher.WithTimeout(5 * time.Second))
//	body, err := r.Fetch(ctx, "https://swapi.dev/api/people/1")
package fetcher
