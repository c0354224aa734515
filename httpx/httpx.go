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
	"net/http"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errchain"
	"dirpx.dev/errchain/adapter"
	"dirpx.dev/errchain/apis"
	"dirpx.dev/errchain/code"
)

// Meta carries extra context that the HTTP layer can add on top of a chain.
// All fields are optional and typically come from request context, headers,
// rate-limiter output, or router-level logic.
type Meta struct {
	Correlation       string
	TraceID           string
	SpanID            string
	RetryAfterSeconds int32
}

// Writer turns a chain into an HTTP error response using the provided
// status mapper. A nil Mapper answers every chain with 500.
type Writer struct {
	Mapper apis.Mapper
}

// Write resolves the chain through the Mapper and writes its view as JSON:
//
//	{
//	  "uri": "com.example.repo.load_user",
//	  "code": "unavailable",
//	  "message": "cannot load user",
//	  "nodes": [{"uri": "...", "description": "...", "params": [...]}],
//	  "correlation": "...", "trace_id": "...", "span_id": "...",
//	  "retry_after_seconds": 5
//	}
//
// No redaction is performed: whatever the chain and Meta hold is exposed.
func (w Writer) Write(rw http.ResponseWriter, c *errchain.Chain, meta Meta) {
	if c == nil {
		return
	}

	st := apis.Status{Code: code.Internal, HTTP: http.StatusInternalServerError}
	if w.Mapper != nil {
		st = w.Mapper.Resolve(c)
	}

	body, err := encode(adapter.ToView(c, st), meta)
	if err != nil {
		http.Error(rw, c.What(), http.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(int(meta.RetryAfterSeconds)))
	}
	rw.WriteHeader(st.HTTP)
	_, _ = rw.Write(body)
}

// WriteError is Write for an arbitrary error. Errors that hold no chain are
// reported as a single-node chain named errchain.UnspecifiedURI.
func (w Writer) WriteError(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}
	c, ok := errchain.As(err)
	if !ok {
		c = errchain.New(errchain.UnspecifiedURI, err.Error())
	}
	w.Write(rw, c, meta)
}

func encode(v apis.ErrorView, meta Meta) ([]byte, error) {
	s, err := adapter.ToStruct(v)
	if err != nil {
		return nil, err
	}
	set := func(k, val string) {
		if val != "" {
			s.Fields[k] = structpb.NewStringValue(val)
		}
	}
	set("correlation", meta.Correlation)
	set("trace_id", meta.TraceID)
	set("span_id", meta.SpanID)
	if meta.RetryAfterSeconds > 0 {
		s.Fields["retry_after_seconds"] = structpb.NewNumberValue(float64(meta.RetryAfterSeconds))
	}

	// protojson keeps the Struct encoding canonical, so the body matches the
	// gRPC detail field for field.
	return protojson.MarshalOptions{UseProtoNames: true}.Marshal(s)
}
