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

import "dirpx.dev/errchain/code"

// Option configures the Mapper at build time. Options are applied to an
// internal builder which is then frozen.
type Option func(*builder)

// WithClass classifies every error URI under prefix as c. The longest
// matching prefix decides. Use "*" to match a single segment.
func WithClass(prefix string, c code.Code) Option {
	return func(b *builder) { b.classes = append(b.classes, prefixRule[code.Code]{prefix, c}) }
}

// WithHTTPPrefix maps error URIs under prefix straight to an HTTP status.
// Prefix rules win over anything derived from the code.
func WithHTTPPrefix(prefix string, http int) Option {
	return func(b *builder) { b.httpPrefixes = append(b.httpPrefixes, prefixRule[int]{prefix, http}) }
}

// WithGRPCPrefix maps error URIs under prefix straight to a gRPC code.
func WithGRPCPrefix(prefix string, grpc int) Option {
	return func(b *builder) { b.grpcPrefixes = append(b.grpcPrefixes, prefixRule[int]{prefix, grpc}) }
}

// WithHTTPDefault replaces the library default HTTP status for c.
func WithHTTPDefault(c code.Code, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// WithGRPCDefault replaces the library default gRPC code for c.
func WithGRPCDefault(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpc }
}

// WithHTTPOverride pins the HTTP status for c. Overrides sit above defaults
// and below URI prefix rules.
func WithHTTPOverride(c code.Code, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithGRPCOverride pins the gRPC code for c.
func WithGRPCOverride(c code.Code, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithFallbackCode sets the code reported for URIs that no class rule
// matches. It defaults to code.Internal. The fallback statuses stay
// 500 / codes.Internal.
func WithFallbackCode(c code.Code) Option {
	return func(b *builder) { b.fallbackCode = c }
}
