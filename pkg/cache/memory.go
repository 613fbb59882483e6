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

// Package cache holds API responses keyed by endpoint identifier.
//
// Entries never expire and are never evicted: the store grows for the life of
// the process. Concurrent writers for the same key are allowed; the last
// writer wins.
package cache

import (
	"encoding/json"
	"sort"
	"sync"
)

// Store is the contract the API client relies on.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Get never errors; it returns (nil, false) on miss.
type Store interface {
	// Get retrieves a cached value. Returns (nil, false) on miss.
	Get(key string) (json.RawMessage, bool)

	// Set stores value under key, replacing any previous value.
	Set(key string, value json.RawMessage)

	// Len returns the number of cached entries.
	Len() int

	// Keys returns the cached keys in sorted order.
	Keys() []string
}

// Memory is an unbounded in-memory Store.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]json.RawMessage),
	}
}

// Get returns a copy of the cached value so callers cannot mutate the entry.
func (m *Memory) Get(key string) (json.RawMessage, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	cp := make(json.RawMessage, len(v))
	copy(cp, v)
	return cp, true
}

func (m *Memory) Set(key string, value json.RawMessage) {
	cp := make(json.RawMessage, len(value))
	copy(cp, value)

	m.mu.Lock()
	m.entries[key] = cp
	m.mu.Unlock()
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memory) Keys() []string {
	m.mu.RLock()
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	m.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// Ensure Memory implements Store
var _ Store = (*Memory)(nil)
