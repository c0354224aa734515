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

// defaultHTTP holds the built-in HTTP status of each well-known code.
// Callers adjust it with WithHTTPDefault / WithHTTPOverride.
var defaultHTTP = map[code.Code]int{
	// 5xx: server side, dependencies, time budget.
	code.Internal:         http.StatusInternalServerError,
	code.Unavailable:      http.StatusServiceUnavailable,
	code.DependencyFailed: http.StatusBadGateway,
	code.Timeout:          http.StatusGatewayTimeout,
	// 499 (nginx) is common for canceled requests; 408 is the standard one.
	code.Canceled: http.StatusRequestTimeout,

	// 4xx: input and resource state.
	code.Invalid:            http.StatusBadRequest,
	code.Missing:            http.StatusBadRequest,
	code.Unsupported:        http.StatusBadRequest,
	code.NotFound:           http.StatusNotFound,
	code.AlreadyExists:      http.StatusConflict,
	code.Conflict:           http.StatusConflict,
	code.PreconditionFailed: http.StatusPreconditionFailed,
	code.RateLimited:        http.StatusTooManyRequests,

	// Access control.
	code.Unauthenticated:  http.StatusUnauthorized,
	code.PermissionDenied: http.StatusForbidden,
}

// defaultGRPC holds the built-in gRPC code of each well-known code.
var defaultGRPC = map[code.Code]codes.Code{
	code.Internal:         codes.Internal,
	code.Unavailable:      codes.Unavailable,
	code.DependencyFailed: codes.FailedPrecondition,
	code.Timeout:          codes.DeadlineExceeded,
	code.Canceled:         codes.Canceled,

	code.Invalid:            codes.InvalidArgument,
	code.Missing:            codes.InvalidArgument,
	code.Unsupported:        codes.InvalidArgument,
	code.NotFound:           codes.NotFound,
	code.AlreadyExists:      codes.AlreadyExists,
	code.Conflict:           codes.Aborted,
	code.PreconditionFailed: codes.FailedPrecondition,
	code.RateLimited:        codes.ResourceExhausted,

	code.Unauthenticated:  codes.Unauthenticated,
	code.PermissionDenied: codes.PermissionDenied,
}
