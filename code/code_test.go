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

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "internal", Normalize("  internal  "))
	assert.Equal(t, "invalid", Normalize("InVaLiD"))
	assert.Equal(t, "not_found", Normalize("not-found"))
	assert.Equal(t, "", Normalize(""))
}

func TestParse(t *testing.T) {
	valid := map[string]Code{
		"internal":       Internal,
		"  NOT-FOUND  ":  NotFound,
		"already-exists": AlreadyExists,
		"abc":            Code("abc"),
	}
	for in, want := range valid {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	invalid := []string{"", "a", "1invalid", "x-", "has space", strings.Repeat("a", MaxLength+1)}
	for _, in := range invalid {
		got, err := Parse(in)
		assert.ErrorIs(t, err, ErrCodeInvalid, in)
		assert.Equal(t, Empty, got)
	}
}

func TestLengthBounds(t *testing.T) {
	_, err := Parse(strings.Repeat("a", MaxLength))
	assert.NoError(t, err)
	_, err = Parse(strings.Repeat("a", MinLength))
	assert.NoError(t, err)
	_, err = Parse(strings.Repeat("a", MinLength-1))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	for _, c := range []Code{Internal, Unavailable, NotFound, PermissionDenied, RateLimited} {
		assert.NoError(t, Validate(c), c)
	}
	for _, c := range []Code{Empty, "ab", "Invalid", "not-found"} {
		assert.Error(t, Validate(c), c)
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, NotFound, MustParse("not_found"))
	assert.Panics(t, func() { MustParse("INVALID CODE ??") })
}

func TestText(t *testing.T) {
	text, err := Internal.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "internal", string(text))

	_, err = Code("Invalid-Dash").MarshalText()
	assert.Error(t, err)

	var c Code
	require.NoError(t, c.UnmarshalText([]byte("  NOT-FOUND  ")))
	assert.Equal(t, NotFound, c)
	assert.Error(t, c.UnmarshalText([]byte("!@#")))
	assert.Equal(t, "not_found", c.String())
}
