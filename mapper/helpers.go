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
	"fmt"
	"strings"

	"dirpx.dev/errchain/code"
	"dirpx.dev/errchain/mapper/internal/segmenttrie"
	"dirpx.dev/errchain/uri"
	"google.golang.org/grpc/codes"
)

// matchKey turns an error URI into a trie key. Relative URIs are matched by
// their segments, so ".db.load" and "db.load" resolve alike.
func matchKey(u string) string {
	return strings.TrimPrefix(uri.Normalize(u), ".")
}

// normalizeAndValidatePrefix returns the canonical form of a rule prefix.
// Every segment must be a valid URI segment or "*", and at least one
// segment must be concrete.
func normalizeAndValidatePrefix(raw string) (string, error) {
	p := matchKey(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	concrete := false
	for _, seg := range strings.Split(p, ".") {
		if seg == "*" {
			continue
		}
		if err := uri.Validate(uri.URI(seg)); err != nil {
			return "", fmt.Errorf("invalid segment %q: %w", seg, err)
		}
		concrete = true
	}
	if !concrete {
		return "", fmt.Errorf("prefix cannot consist of '*' only")
	}
	return p, nil
}

// buildTrie compiles rules into a trie, converting values with conv.
func buildTrie[In, Out any](kind string, rules []prefixRule[In], conv func(In) Out) (*segmenttrie.Trie[Out], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	t := segmenttrie.New[Out]()
	for _, r := range rules {
		p, err := normalizeAndValidatePrefix(r.prefix)
		if err != nil {
			return nil, fmt.Errorf("mapper: invalid %s prefix %q: %w", kind, r.prefix, err)
		}
		if err := t.Insert(p, conv(r.val)); err != nil {
			return nil, fmt.Errorf("mapper: cannot insert %s prefix %q: %w", kind, p, err)
		}
	}
	return t, nil
}

// freezeHTTP copies a per-code HTTP map so the mapper never shares it with
// the builder.
func freezeHTTP(src map[code.Code]int) map[code.Code]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC copies a per-code gRPC map, converting the builder's ints into
// typed codes.
func freezeGRPC(src map[code.Code]int) map[code.Code]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

func identity[T any](v T) T { return v }

func toGRPC(v int) codes.Code { return codes.Code(v) }
