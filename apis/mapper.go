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

package apis

import (
	"dirpx.dev/errchain/code"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the mapping rules.
// It resolves error URIs into a classification code and transport statuses.
type Mapper interface {
	// Status resolves a single error URI.
	Status(uri string) Status

	// Resolve walks the chain front to back and resolves the first node
	// that matches a rule. A chain with no matching node gets the fallback.
	Resolve(e ChainedError) Status

	// Explain returns a human-readable description of which rules matched
	// for uri. It is meant for debugging, not for parsing.
	Explain(uri string) string
}

// Status is the resolved outcome for one error.
type Status struct {
	Code code.Code  // Classification of the error.
	HTTP int        // HTTP status code (net/http compatible).
	GRPC codes.Code // gRPC status code.
}
