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

package code

// Generic failures.
const (
	// Internal is the fallback for anything the mapper cannot classify.
	Internal Code = "internal"

	// Invalid means input violated a format or consistency rule.
	Invalid Code = "invalid"

	// Missing means a required value was not supplied.
	Missing Code = "missing"

	// Unsupported means the operation or option is not available.
	Unsupported Code = "unsupported"
)

// Runtime conditions, usually transient.
const (
	Unavailable      Code = "unavailable"
	Timeout          Code = "timeout"
	Canceled         Code = "canceled"
	DependencyFailed Code = "dependency_failed"
	RateLimited      Code = "rate_limited"
)

// Resource state.
const (
	NotFound           Code = "not_found"
	AlreadyExists      Code = "already_exists"
	Conflict           Code = "conflict"
	PreconditionFailed Code = "precondition_failed"
)

// Access control.
const (
	// Unauthenticated means the caller did not prove who it is.
	Unauthenticated Code = "unauthenticated"

	// PermissionDenied means the caller is known but not allowed.
	PermissionDenied Code = "permission_denied"
)
