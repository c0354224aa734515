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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndMatch(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert("com.example.storage", 503))
	require.NoError(t, tr.Insert("com.example.auth.jwt.verify", 401))
	require.NoError(t, tr.Insert("com.codalogic.nexp.2", 400))

	tests := []struct {
		key     string
		want    int
		pattern string
	}{
		{"com.example.storage.pg.connect", 503, "com.example.storage"},
		{"com.example.storage", 503, "com.example.storage"},
		{"com.example.auth.jwt.verify", 401, "com.example.auth.jwt.verify"},
		{"com.codalogic.nexp.2.detail", 400, "com.codalogic.nexp.2"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v, ok, p := tr.MatchWithPattern(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.pattern, p)
		})
	}

	_, ok := tr.Match("com.example")
	assert.False(t, ok, "a shorter key must not match a longer prefix")
	_, ok = tr.Match("com.example.storages")
	assert.False(t, ok, "matching must respect segment boundaries")
}

func TestLongestPrefixWins(t *testing.T) {
	tr := New[string]()
	require.NoError(t, tr.Insert("com.example", "org"))
	require.NoError(t, tr.Insert("com.example.db", "db"))
	require.NoError(t, tr.Insert("com.example.db.load", "load"))

	v, _ := tr.Match("com.example.db.load.table")
	assert.Equal(t, "load", v)
	v, _ = tr.Match("com.example.db.save")
	assert.Equal(t, "db", v)
	v, _ = tr.Match("com.example.file")
	assert.Equal(t, "org", v)
}

func TestWildcard_OneSegment(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert("com.*.open", 498))
	require.NoError(t, tr.Insert("com.file.open", 401))

	v, ok, p := tr.MatchWithPattern("com.file.open")
	require.True(t, ok)
	assert.Equal(t, 401, v)
	assert.Equal(t, "com.file.open", p)

	v, ok, p = tr.MatchWithPattern("com.socket.open.timeout")
	require.True(t, ok)
	assert.Equal(t, 498, v)
	assert.Equal(t, "com.*.open", p)

	_, ok = tr.Match("com.open")
	assert.False(t, ok, "wildcard must not match zero segments")
}

func TestWildcard_DeeperPathBeatsShallowExact(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert("a.*.c", 7))
	require.NoError(t, tr.Insert("a.b", 1))

	v, ok, p := tr.MatchWithPattern("a.b.c")
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, "a.*.c", p)
}

func TestInsert_Replaces(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert("a.b", 1))
	require.NoError(t, tr.Insert("a.b", 2))
	v, _ := tr.Match("a.b")
	assert.Equal(t, 2, v)
}

func TestInvalidInputs(t *testing.T) {
	tr := New[int]()
	for _, p := range []string{"", "UPPER.case", "a..b", "*", "*.*", "a.b.", "_x.y"} {
		assert.ErrorIs(t, tr.Insert(p, 1), ErrInvalidPrefix, p)
	}

	require.NoError(t, tr.Insert("a.b", 1))
	for _, k := range []string{"UPPER.case", "A.b", "", "_a.b"} {
		_, ok := tr.Match(k)
		assert.False(t, ok, k)
	}

	var nilTrie *Trie[int]
	assert.ErrorIs(t, nilTrie.Insert("a", 1), ErrInvalidPrefix)
	_, ok := nilTrie.Match("a")
	assert.False(t, ok)
}
