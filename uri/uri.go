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

package uri

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// URI is the canonical, validated form of an error identifier.
//
// URIs are dot-separated, reverse-domain style names. The leading segments
// name the organisation and module, the last one names the error:
//
//   - "com.example.storage.open_failed"
//   - "com.codalogic.nexp.show_params_storage.2"
//   - ".storage.open_failed" (relative: the organisation is implied)
type URI string

const (
	// MinLength is the minimum length of a URI, leading dot included.
	MinLength = 1

	// MaxLength is the maximum length of a URI.
	MaxLength = 256

	// MaxSegments is the maximum number of dot-separated segments.
	MaxSegments = 16
)

const (
	// uriFmt accepts an optional leading dot followed by one or more
	// segments. Each segment starts with a lowercase ASCII letter or digit
	// and continues with lowercase letters, digits or underscores.
	//
	// Examples that match:
	//
	//	"com.example.storage.open_failed"
	//	"com.codalogic.f1.safe_divide.k_is_0"
	//	".mymodule.myerror"
	//
	// Examples that DO NOT match:
	//
	//	"Com.Example"   (uppercase)
	//	"com..example"  (empty segment)
	//	"com.example."  (trailing dot)
	//	"_private.err"  (underscore first)
	uriFmt = `^\.?[a-z0-9][a-z0-9_]*(\.[a-z0-9][a-z0-9_]*)*$`
)

var uriRe = regexp.MustCompile(uriFmt)

var (
	// ErrURIInvalidFormat is returned when a URI does not match the
	// expected segment syntax.
	ErrURIInvalidFormat = errors.New("errchain: invalid error uri format")
	// ErrURIInvalidLength is returned when a URI is empty or too long.
	ErrURIInvalidLength = errors.New("errchain: invalid error uri length")
	// ErrURITooDeep is returned when a URI has more than MaxSegments segments.
	ErrURITooDeep = errors.New("errchain: error uri has too many segments")
)

var (
	_ encoding.TextMarshaler   = (*URI)(nil)
	_ encoding.TextUnmarshaler = (*URI)(nil)
)

// Empty is the zero-value URI. It is never valid.
var Empty URI = ""

// Normalize brings s closer to the canonical form:
//
//   - trim spaces
//   - lower-case
//   - convert "/" to "." (paths are a common way to spell modules)
//   - replace "-" with "_"
//
// A leading dot survives normalization, so relative URIs stay relative.
// The result is not guaranteed to be valid.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates s.
func Parse(s string) (URI, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return URI(s), nil
}

// MustParse is like Parse but panics on error. It is meant for package-level
// identifier declarations.
func MustParse(s string) URI {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Validate checks whether u is already in canonical form.
func Validate(u URI) error {
	return validate(string(u))
}

// String returns the URI text.
func (u URI) String() string {
	return string(u)
}

// IsRelative reports whether u starts with a dot.
func (u URI) IsRelative() bool {
	return strings.HasPrefix(string(u), ".")
}

// Segments returns the dot-separated parts of u, without the leading dot of
// a relative URI.
func (u URI) Segments() []string {
	s := strings.TrimPrefix(string(u), ".")
	if s == "" {
		return nil
	}
	return strings.Split(s, ".")
}

// HasPrefix reports whether u starts with the segments of prefix. Matching
// respects segment boundaries, so "com.example" is a prefix of
// "com.example.db" but not of "com.examples".
func (u URI) HasPrefix(prefix URI) bool {
	us, ps := u.Segments(), prefix.Segments()
	if len(ps) == 0 || len(ps) > len(us) {
		return false
	}
	for i := range ps {
		if us[i] != ps[i] {
			return false
		}
	}
	return true
}

// MarshalText implements encoding.TextMarshaler.
func (u URI) MarshalText() ([]byte, error) {
	if err := Validate(u); err != nil {
		return nil, err
	}
	return []byte(u), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The text is normalized and validated before it is assigned.
func (u *URI) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrURIInvalidLength
	}
	if strings.Count(strings.TrimPrefix(s, "."), ".")+1 > MaxSegments {
		return ErrURITooDeep
	}
	if !uriRe.MatchString(s) {
		return ErrURIInvalidFormat
	}
	return nil
}
