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

// Package mapper resolves error URIs, and whole chains, into a
// classification code and HTTP / gRPC statuses.
//
// # Rules
//
// Rules are keyed on URI prefixes and respect segment boundaries. "*" matches
// exactly one segment, and the longest matching prefix wins:
//
//	m, err := mapper.New(
//	    mapper.WithClass("com.example.storage", code.Unavailable),
//	    mapper.WithClass("com.example.*.not_found", code.NotFound),
//	    mapper.WithHTTPPrefix("com.example.storage.quota", 507),
//	)
//
// A class rule assigns a code. The code then supplies the statuses through
// per-code overrides and library defaults (code.Unavailable -> 503 /
// Unavailable, code.NotFound -> 404 / NotFound, ...). Direct HTTP or gRPC
// prefix rules bypass the code for that transport.
//
// # Chains
//
// Mapper.Resolve walks a chain from its front node to its root cause and
// uses the first URI that any rule matches. A handler that wraps a storage
// failure in an unclassified "com.example.api.get_user" error still gets the
// storage status.
//
// # Diagnostics
//
// Mapper.Explain prints which tier decided each transport. The output is
// meant for people, not for parsing.
//
// # Immutability
//
// New copies every input. A Mapper never changes afterwards and can be
// shared across goroutines.
package mapper
