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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type testShip struct {
	Name   string   `json:"name" yaml:"name"`
	Pilots int      `json:"pilots" yaml:"pilots"`
	Films  []string `json:"films" yaml:"films"`
}

func TestWriter_Serialize(t *testing.T) {
	ship := testShip{Name: "X-wing", Pilots: 4, Films: []string{"A New Hope"}}

	tests := []struct {
		name     string
		format   Format
		contains []string
	}{
		{
			name:     "json",
			format:   FormatJSON,
			contains: []string{`"name": "X-wing"`, `"pilots": 4`},
		},
		{
			name:     "yaml",
			format:   FormatYAML,
			contains: []string{"name: X-wing", "pilots: 4", "- A New Hope"},
		},
		{
			name:     "table",
			format:   FormatTable,
			contains: []string{"FIELD", "VALUE", "Name", "X-wing", "Films.[0]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(tt.format, &buf)
			require.NoError(t, w.Serialize(context.Background(), ship))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestWriter_YAMLRoundTripsShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatYAML, &buf).Serialize(context.Background(), testShip{Name: "Y-wing"}))

	var got testShip
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Y-wing", got.Name)
}

func TestNewWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)
	assert.Equal(t, FormatJSON, w.Format())

	require.NoError(t, w.Serialize(context.Background(), map[string]int{"a": 1}))
	var got map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 1, got["a"])
}

func TestNewWriter_NilOutputUsesStdout(t *testing.T) {
	w := NewWriter(FormatJSON, nil)
	require.NotNil(t, w.output)
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format  Format
		unknown bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("text"), true},
		{Format(""), true},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.unknown, tt.format.IsUnknown())
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" YAML ")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table, json, yaml")
}

func TestWriter_SerializeTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), struct{}{}))
	assert.Equal(t, "<empty>\n", buf.String())
}

func TestWriter_SerializeTable_NilAndScalar(t *testing.T) {
	var buf bytes.Buffer
	type withPtr struct {
		Next *string
	}
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), withPtr{}))
	assert.Contains(t, buf.String(), "<nil>")

	buf.Reset()
	require.NoError(t, NewWriter(FormatTable, &buf).Serialize(context.Background(), 42))
	assert.Contains(t, buf.String(), "value")
	assert.Contains(t, buf.String(), "42")
}

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, map[string]int{"errors": 0})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"errors":0}`, rec.Body.String())
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, map[string]any{"bad": make(chan int)})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRespondText(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondText(rec, http.StatusNotFound, "page not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
	assert.Equal(t, "page not found", rec.Body.String())
}

func TestRespondHTML(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondHTML(rec, http.StatusOK, []byte("<html></html>"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<html></html>", rec.Body.String())
}
