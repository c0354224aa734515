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

// Option is a functional option applied by E after the front node exists.
type Option func(*Chain)

// E is a convenience constructor for Chain.
//
// Usage:
//
//	return errchain.E("com.example.db.bad_cell", "unable to access database cell",
//	    errchain.WithParam("row", row),
//	    errchain.WithParam("column", column),
//	    errchain.WithPrevious(cause),
//	)
//
// Options are applied in order.
func E(uri, description string, opts ...Option) *Chain {
	c := New(uri, description)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithParam adds one parameter to the front node.
func WithParam(name string, value any) Option {
	return func(c *Chain) { c.Add(name, value) }
}

// WithParams adds every parameter of p, in order, to the front node.
func WithParams(p *Params) Option {
	return func(c *Chain) {
		for _, it := range p.All() {
			c.Add(it.Name, it.Value)
		}
	}
}

// WithPrevious drains prev into the chain being built, behind every node
// already present. A nil prev is ignored.
func WithPrevious(prev *Chain) Option {
	return func(c *Chain) { c.absorb(prev) }
}
