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

package errchain

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Param is a single named context value attached to a Node.
//
// Params are stored by value, so a Param obtained from a Params set can be
// kept around without affecting the set it came from.
type Param struct {
	Name  string
	Value string
}

// String renders the parameter as "name: value".
func (p Param) String() string {
	return p.Name + ": " + p.Value
}

// Params is an ordered set of named context values.
//
// Insertion order is preserved and is significant for rendering and for
// indexed access. Duplicate names are allowed; Has and Get report on the
// first match.
//
// A nil *Params is a valid, empty set for every read method.
type Params struct {
	items []Param
}

// P returns a new parameter set holding a single name/value pair. It is the
// usual starting point for a fluent chain of Add calls:
//
//	errchain.P("row", 1).Add("column", 2)
func P(name string, value any) *Params {
	return new(Params).Add(name, value)
}

// Add appends a parameter and returns p so calls can be chained.
//
// Strings are stored unchanged. Any other value is stored in its default
// textual form as produced by fmt.Sprint, so 2 becomes "2" and 3.0
// becomes "3".
func (p *Params) Add(name string, value any) *Params {
	p.items = append(p.items, Param{Name: name, Value: stringify(value)})
	return p
}

// Has reports whether a parameter with the given name exists.
// The comparison is exact and case-sensitive.
func (p *Params) Has(name string) bool {
	_, ok := p.lookup(name)
	return ok
}

// Get returns the value of the first parameter named name, or "" when there
// is none. A missing parameter is not an error.
func (p *Params) Get(name string) string {
	v, _ := p.lookup(name)
	return v
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.items)
}

// Empty reports whether the set holds no parameters.
func (p *Params) Empty() bool { return p.Len() == 0 }

// At returns the i-th parameter in insertion order.
// It panics if i is out of range.
func (p *Params) At(i int) Param {
	if i < 0 || i >= p.Len() {
		panic(fmt.Sprintf("errchain: parameter index %d out of range [0:%d]", i, p.Len()))
	}
	return p.items[i]
}

// All iterates over the parameters in insertion order.
func (p *Params) All() iter.Seq2[int, Param] {
	return func(yield func(int, Param) bool) {
		for i := 0; i < p.Len(); i++ {
			if !yield(i, p.items[i]) {
				return
			}
		}
	}
}

// String renders the set as "name1: value1, name2: value2". An empty set
// renders as the empty string.
func (p *Params) String() string {
	if p.Empty() {
		return ""
	}
	var b strings.Builder
	for i, it := range p.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(it.Name)
		b.WriteString(": ")
		b.WriteString(it.Value)
	}
	return b.String()
}

// clone returns an independent copy. The copy never shares its backing
// array with p, so appending to either side cannot leak into the other.
func (p *Params) clone() *Params {
	if p.Empty() {
		return &Params{}
	}
	return &Params{items: slices.Clone(p.items)}
}

func (p *Params) lookup(name string) (string, bool) {
	if p == nil {
		return "", false
	}
	for _, it := range p.items {
		if it.Name == name {
			return it.Value, true
		}
	}
	return "", false
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
