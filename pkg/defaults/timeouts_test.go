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

package defaults

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Fetch timeouts
		{"FetchTimeout", FetchTimeout, 1 * time.Second, 30 * time.Second},

		// Server timeouts
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerWriteTimeout", ServerWriteTimeout, 15 * time.Second, 60 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 30 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},

		// HTTP client timeouts
		{"HTTPConnectTimeout", HTTPConnectTimeout, 1 * time.Second, 15 * time.Second},
		{"HTTPTLSHandshakeTimeout", HTTPTLSHandshakeTimeout, 1 * time.Second, 15 * time.Second},

		// Job timeouts
		{"CycleTimeout", CycleTimeout, 30 * time.Second, 10 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestServerTimeoutRelationships(t *testing.T) {
	// Read timeout should be shorter than write timeout
	if ServerReadTimeout > ServerWriteTimeout {
		t.Errorf("ServerReadTimeout (%v) should not exceed ServerWriteTimeout (%v)",
			ServerReadTimeout, ServerWriteTimeout)
	}

	// Idle timeout should be longer than write timeout
	if ServerIdleTimeout < ServerWriteTimeout {
		t.Errorf("ServerIdleTimeout (%v) should be at least ServerWriteTimeout (%v)",
			ServerIdleTimeout, ServerWriteTimeout)
	}
}

func TestFetchTimeoutRelationships(t *testing.T) {
	// A whole cycle makes five fetches, so it must outlast several of them.
	if CycleTimeout < 5*FetchTimeout {
		t.Errorf("CycleTimeout (%v) should allow at least five fetches of %v",
			CycleTimeout, FetchTimeout)
	}

	if HTTPConnectTimeout > FetchTimeout {
		t.Errorf("HTTPConnectTimeout (%v) should not exceed FetchTimeout (%v)",
			HTTPConnectTimeout, FetchTimeout)
	}
}

func TestPresentationLimits(t *testing.T) {
	if MaxStarshipsToDisplay <= 0 {
		t.Errorf("MaxStarshipsToDisplay must be positive, got %d", MaxStarshipsToDisplay)
	}
	if MaxVehicleID < 1 {
		t.Errorf("MaxVehicleID must be at least 1, got %d", MaxVehicleID)
	}
	if MinPopulation <= MinDiameter {
		t.Errorf("MinPopulation (%d) expected to dwarf MinDiameter (%d)", MinPopulation, MinDiameter)
	}
}
