/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/errchain"
	"dirpx.dev/errchain/apis"
	"dirpx.dev/errchain/code"
	"dirpx.dev/errchain/mapper"
)

type body struct {
	apis.ErrorView
	Correlation       string  `json:"correlation"`
	TraceID           string  `json:"trace_id"`
	SpanID            string  `json:"span_id"`
	RetryAfterSeconds float64 `json:"retry_after_seconds"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) body {
	t.Helper()
	var b body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b), rec.Body.String())
	return b
}

func newWriter(t *testing.T) Writer {
	t.Helper()
	m, err := mapper.New(
		mapper.WithClass("com.example.quota", code.RateLimited),
		mapper.WithClass("com.example.input", code.Invalid),
	)
	require.NoError(t, err)
	return Writer{Mapper: m}
}

func TestWrite(t *testing.T) {
	root := errchain.New("com.example.input.bad_id", "bad id").Add("id", "x-1")
	c := errchain.Wrap("com.example.api.get_user", "request failed", root)

	rec := httptest.NewRecorder()
	newWriter(t).Write(rec, c, Meta{Correlation: "req-1", TraceID: "t1", SpanID: "s1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Header().Get("Retry-After"))

	b := decode(t, rec)
	assert.Equal(t, "com.example.api.get_user", b.URI)
	assert.Equal(t, "invalid", b.Code)
	assert.Equal(t, "request failed", b.Message)
	assert.Equal(t, "req-1", b.Correlation)
	assert.Equal(t, "t1", b.TraceID)
	assert.Equal(t, "s1", b.SpanID)
	require.Len(t, b.Nodes, 2)
	assert.Equal(t, []apis.ParamView{{Name: "id", Value: "x-1"}}, b.Nodes[1].Params)
}

func TestWrite_RetryAfter(t *testing.T) {
	rec := httptest.NewRecorder()
	c := errchain.New("com.example.quota.exceeded", "slow down")
	newWriter(t).Write(rec, c, Meta{RetryAfterSeconds: 5})

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("Retry-After"))
	assert.Equal(t, float64(5), decode(t, rec).RetryAfterSeconds)
}

func TestWrite_NilChain(t *testing.T) {
	rec := httptest.NewRecorder()
	newWriter(t).Write(rec, nil, Meta{})
	assert.Zero(t, rec.Body.Len())
	assert.Empty(t, rec.Header())
}

func TestWrite_NilMapper(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, errchain.New("com.example.input.bad", "bad"), Meta{})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal", decode(t, rec).Code)
}

func TestWriteError(t *testing.T) {
	w := newWriter(t)

	rec := httptest.NewRecorder()
	wrapped := fmt.Errorf("ctx: %w", errchain.New("com.example.input.bad", "bad input"))
	w.WriteError(rec, wrapped, Meta{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad input", decode(t, rec).Message)

	rec = httptest.NewRecorder()
	w.WriteError(rec, errors.New("plain"), Meta{})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	b := decode(t, rec)
	assert.Equal(t, errchain.UnspecifiedURI, b.URI)
	assert.Equal(t, "plain", b.Message)

	rec = httptest.NewRecorder()
	w.WriteError(rec, nil, Meta{})
	assert.Zero(t, rec.Body.Len())
}

type quotaError struct{ *errchain.Chain }

func TestWriteError_DomainError(t *testing.T) {
	var de error = &quotaError{errchain.New("com.example.quota.exceeded", "slow down").Add("limit", 10)}

	rec := httptest.NewRecorder()
	newWriter(t).WriteError(rec, fmt.Errorf("handler: %w", de), Meta{})

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	b := decode(t, rec)
	assert.Equal(t, "com.example.quota.exceeded", b.URI)
	assert.Equal(t, "rate_limited", b.Code)
	require.Len(t, b.Nodes, 1)
	assert.Equal(t, []apis.ParamView{{Name: "limit", Value: "10"}}, b.Nodes[0].Params)
}
