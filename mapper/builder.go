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

package mapper

import (
	"net/http"

	"dirpx.dev/errchain/code"
	"google.golang.org/grpc/codes"
)

// prefixRule is a raw rule as given to an option. The prefix is normalized
// and validated when the mapper is built.
type prefixRule[T any] struct {
	prefix string
	val    T
}

type builder struct {
	// classes maps URI prefixes to classification codes.
	classes []prefixRule[code.Code]

	// httpPrefixes / grpcPrefixes map URI prefixes directly to statuses.
	// gRPC values stay ints until the mapper is frozen.
	httpPrefixes []prefixRule[int]
	grpcPrefixes []prefixRule[int]

	// per-code values; defaults are seeded from the library tables.
	httpDefaults map[code.Code]int
	grpcDefaults map[code.Code]int
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]int

	// used when no rule matches at all
	fallbackCode code.Code
	fallbackHTTP int
	fallbackGRPC codes.Code
}

func newBuilder() *builder {
	b := &builder{
		httpDefaults: make(map[code.Code]int, len(defaultHTTP)),
		grpcDefaults: make(map[code.Code]int, len(defaultGRPC)),
		httpOverride: make(map[code.Code]int),
		grpcOverride: make(map[code.Code]int),
		fallbackCode: code.Internal,
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		b.grpcDefaults[k] = int(v)
	}
	return b
}
