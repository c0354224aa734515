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

package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for dot-separated keys such as error
// URIs. Each node is one segment; the wildcard "*" matches exactly one
// segment. Lookups return the longest (deepest) matching prefix, so a more
// specific rule wins over a shorter one.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the prefix as inserted, kept for diagnostics. Set only
	// when hasVal is true.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty segments or invalid characters, or consists only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with a dot-separated prefix, e.g.
//
//	"com.example.storage"
//	"com.example.*.open"
//
// Inserting the same prefix twice replaces the value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	wildOnly := true
	for _, s := range segs {
		if !validSegment(s, true) {
			return ErrInvalidPrefix
		}
		if s != "*" {
			wildOnly = false
		}
	}
	if wildOnly {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, ok := cur.children[s]
		if !ok {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match returns the value of the deepest prefix that matches key.
// An invalid key, or one that nothing matches, yields the zero value and
// false.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match that also returns the matched prefix as it
// was inserted.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	best, bestDepth := (*Trie[T])(nil), -1
	t.walk(key, 0, 0, func(n *Trie[T], depth int) {
		if depth > bestDepth {
			best, bestDepth = n, depth
		}
	})
	if best == nil {
		return zero, false, ""
	}
	return best.val, true, best.pattern
}

// walk visits every node carrying a value along the paths that match key,
// exploring both the exact and the wildcard branch at each segment.
// off is the byte offset of the next segment in key.
func (t *Trie[T]) walk(key string, off, depth int, visit func(*Trie[T], int)) {
	if t.hasVal {
		visit(t, depth)
	}
	if off >= len(key) {
		return
	}
	end := strings.IndexByte(key[off:], '.')
	if end < 0 {
		end = len(key)
	} else {
		end += off
	}
	seg := key[off:end]
	if !validSegment(seg, false) {
		return
	}
	next := end + 1
	if child, ok := t.children[seg]; ok {
		child.walk(key, next, depth+1, visit)
	}
	if child, ok := t.children["*"]; ok {
		child.walk(key, next, depth+1, visit)
	}
}

// validSegment reports whether seg is [a-z0-9][a-z0-9_]*, or "*" when
// wildcards are allowed.
func validSegment(seg string, allowWildcard bool) bool {
	if seg == "" {
		return false
	}
	if allowWildcard && seg == "*" {
		return true
	}
	if !lowerOrDigit(seg[0]) {
		return false
	}
	for i := 1; i < len(seg); i++ {
		if c := seg[i]; !lowerOrDigit(c) && c != '_' {
			return false
		}
	}
	return true
}

func lowerOrDigit(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
