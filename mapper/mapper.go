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

	"dirpx.dev/errchain/apis"
	"dirpx.dev/errchain/code"
	"dirpx.dev/errchain/mapper/internal/segmenttrie"
	"google.golang.org/grpc/codes"
)

// New builds an immutable apis.Mapper.
//
// Build steps:
//
//  1. Seed a builder with the library defaults.
//  2. Apply the options in order.
//  3. Validate class codes, then normalize and validate every prefix.
//  4. Compile class, HTTP and gRPC rules into segment tries.
//  5. Copy the per-code maps, so the snapshot shares nothing with the builder.
//
// An error means a rule had an invalid prefix or code.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	if err := code.Validate(b.fallbackCode); err != nil {
		return nil, fmt.Errorf("mapper: invalid fallback code %q: %w", b.fallbackCode, err)
	}
	for _, r := range b.classes {
		if err := code.Validate(r.val); err != nil {
			return nil, fmt.Errorf("mapper: invalid code %q for prefix %q: %w", r.val, r.prefix, err)
		}
	}

	classTrie, err := buildTrie("class", b.classes, identity[code.Code])
	if err != nil {
		return nil, err
	}
	httpTrie, err := buildTrie("HTTP", b.httpPrefixes, identity[int])
	if err != nil {
		return nil, err
	}
	grpcTrie, err := buildTrie("gRPC", b.grpcPrefixes, toGRPC)
	if err != nil {
		return nil, err
	}

	return &mapper{
		classTrie:    classTrie,
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		fallbackCode: b.fallbackCode,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// mapper resolves error URIs against three segment tries (class, HTTP,
// gRPC) and per-code tables. It is read-only after New and safe for
// concurrent use. Nil tries and maps simply never match.
type mapper struct {
	classTrie *segmenttrie.Trie[code.Code]
	httpTrie  *segmenttrie.Trie[int]
	grpcTrie  *segmenttrie.Trie[codes.Code]

	httpDefault  map[code.Code]int
	grpcDefault  map[code.Code]codes.Code
	httpOverride map[code.Code]int
	grpcOverride map[code.Code]codes.Code

	fallbackCode code.Code
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// Status resolves one error URI.
//
// The code is the longest matching class rule, or the fallback code.
// Each transport status is resolved in this order:
//  1. longest matching URI prefix rule for that transport;
//  2. override for the classified code;
//  3. default for the classified code;
//  4. fallback (500 / codes.Internal).
//
// Tiers 2 and 3 only apply when a class rule matched.
func (m *mapper) Status(u string) apis.Status {
	key := matchKey(u)
	c, classified := m.classTrie.Match(key)
	if !classified {
		c = m.fallbackCode
	}
	st := apis.Status{Code: c, HTTP: m.fallbackHTTP, GRPC: m.fallbackGRPC}

	if v, ok := m.httpTrie.Match(key); ok {
		st.HTTP = v
	} else if v, ok := m.httpOverride[c]; ok && classified {
		st.HTTP = v
	} else if v, ok := m.httpDefault[c]; ok && classified {
		st.HTTP = v
	}

	if v, ok := m.grpcTrie.Match(key); ok {
		st.GRPC = v
	} else if v, ok := m.grpcOverride[c]; ok && classified {
		st.GRPC = v
	} else if v, ok := m.grpcDefault[c]; ok && classified {
		st.GRPC = v
	}
	return st
}

// Resolve walks e from the front node to the root cause and resolves the
// first URI that any rule matches. The most specific error that the rules
// know about therefore decides the status.
func (m *mapper) Resolve(e apis.ChainedError) apis.Status {
	if e != nil {
		for _, u := range e.ErrorURIs() {
			if m.matches(matchKey(u)) {
				return m.Status(u)
			}
		}
	}
	return apis.Status{Code: m.fallbackCode, HTTP: m.fallbackHTTP, GRPC: m.fallbackGRPC}
}

func (m *mapper) matches(key string) bool {
	if _, ok := m.classTrie.Match(key); ok {
		return true
	}
	if _, ok := m.httpTrie.Match(key); ok {
		return true
	}
	_, ok := m.grpcTrie.Match(key)
	return ok
}

// Explain describes how Status resolved u, for example:
//
//	uri="com.example.storage.pg.connect" code="unavailable" class="com.example.storage"
//	http: source=prefix pattern="com.example.storage.pg" -> 599
//	grpc: source=default -> UNAVAILABLE(14)
//
// source is one of prefix, override, default or fallback.
func (m *mapper) Explain(u string) string {
	key := matchKey(u)

	var b strings.Builder
	c, classified, pat := m.classTrie.MatchWithPattern(key)
	if classified {
		_, _ = fmt.Fprintf(&b, "uri=%q code=%q class=%q\n", u, c, pat)
	} else {
		c = m.fallbackCode
		_, _ = fmt.Fprintf(&b, "uri=%q code=%q class=fallback\n", u, c)
	}

	_, _ = fmt.Fprintln(&b, m.explainHTTP(key, c, classified))
	_, _ = fmt.Fprint(&b, m.explainGRPC(key, c, classified))
	return b.String()
}

func (m *mapper) explainHTTP(key string, c code.Code, classified bool) string {
	if v, ok, pat := m.httpTrie.MatchWithPattern(key); ok {
		return fmt.Sprintf("http: source=prefix pattern=%q -> %d", pat, v)
	}
	if classified {
		if v, ok := m.httpOverride[c]; ok {
			return fmt.Sprintf("http: source=override -> %d", v)
		}
		if v, ok := m.httpDefault[c]; ok {
			return fmt.Sprintf("http: source=default -> %d", v)
		}
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

func (m *mapper) explainGRPC(key string, c code.Code, classified bool) string {
	if v, ok, pat := m.grpcTrie.MatchWithPattern(key); ok {
		return fmt.Sprintf("grpc: source=prefix pattern=%q -> %s", pat, grpcName(v))
	}
	if classified {
		if v, ok := m.grpcOverride[c]; ok {
			return fmt.Sprintf("grpc: source=override -> %s", grpcName(v))
		}
		if v, ok := m.grpcDefault[c]; ok {
			return fmt.Sprintf("grpc: source=default -> %s", grpcName(v))
		}
	}
	return fmt.Sprintf("grpc: source=fallback -> %s", grpcName(m.fallbackGRPC))
}

func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}
