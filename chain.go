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
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"
)

const (
	// UndescribedError is what What and Error return for an empty chain.
	UndescribedError = "<undescribed error chain>"

	// UnspecifiedURI is what MainErrorURI returns for an empty chain.
	UnspecifiedURI = "<unspecified error_uri>"
)

// Chain is an error made of causally linked nodes.
//
// The front node is the most recent and most specific error; the back node
// is the root cause. Chains are built at the failure site with one node and
// grow by one node each time a handler wraps them with more context.
//
// Wrapping drains the previous chain: its nodes move into the new chain and
// the previous chain is left empty. An empty chain is only ever the source
// of such a move; no operation brings it back.
//
// A Chain is not safe for concurrent mutation.
type Chain struct {
	// nodes holds the chain root first, so the front node is the last
	// element and wrapping is an append.
	nodes []Node
}

// New returns a chain holding a single node without parameters.
func New(uri, description string) *Chain {
	return &Chain{nodes: []Node{newNode(uri, nil, description)}}
}

// NewWithParams returns a chain holding a single node with a copy of params.
func NewWithParams(uri string, params *Params, description string) *Chain {
	return &Chain{nodes: []Node{newNode(uri, params, description)}}
}

// Wrap returns a chain whose front node is (uri, description) and whose
// remaining nodes are taken, in order, from prev. prev is empty afterwards.
//
// A nil prev yields a fresh single-node chain.
//
//	if err := open(name); err != nil {
//	    var c *errchain.Chain
//	    if errors.As(err, &c) {
//	        return errchain.Wrap("com.example.db.load", "cannot load table", c)
//	    }
//	}
func Wrap(uri, description string, prev *Chain) *Chain {
	return WrapWithParams(uri, nil, description, prev)
}

// WrapWithParams is Wrap with parameters on the new front node.
func WrapWithParams(uri string, params *Params, description string, prev *Chain) *Chain {
	c := &Chain{}
	c.absorb(prev)
	c.nodes = append(c.nodes, newNode(uri, params, description))
	return c
}

// absorb moves all nodes of prev behind the nodes of c and empties prev.
func (c *Chain) absorb(prev *Chain) {
	if prev == nil || prev == c || len(prev.nodes) == 0 {
		return
	}
	c.nodes = append(prev.nodes, c.nodes...)
	prev.nodes = nil
}

// Error implements the error interface. It returns the description of the
// front node, so code unaware of chains still gets a meaningful message.
func (c *Chain) Error() string { return c.What() }

// What returns the description of the front node, or UndescribedError if
// the chain is empty.
func (c *Chain) What() string {
	if c.Empty() {
		return UndescribedError
	}
	return c.front().description
}

// MainErrorURI returns the identifier of the front node, or UnspecifiedURI
// if the chain is empty.
func (c *Chain) MainErrorURI() string {
	if c.Empty() {
		return UnspecifiedURI
	}
	return c.front().uri
}

// Add appends a parameter to the front node and returns c for chaining.
// Calling Add on an empty chain is a programming error and panics.
func (c *Chain) Add(name string, value any) *Chain {
	if c.Empty() {
		panic("errchain: Add called on an empty chain")
	}
	// Copy on write: Node values handed out earlier keep their params.
	n := &c.nodes[len(c.nodes)-1]
	p := n.params.clone()
	p.Add(name, value)
	n.params = p
	return c
}

// Empty reports whether the chain holds no nodes. This only happens after
// the chain has been drained by Wrap.
func (c *Chain) Empty() bool { return c.Len() == 0 }

// Len returns the number of nodes.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.nodes)
}

// Front returns the most recent node. It panics on an empty chain.
func (c *Chain) Front() Node {
	if c.Empty() {
		panic("errchain: Front called on an empty chain")
	}
	return c.front()
}

func (c *Chain) front() Node { return c.nodes[len(c.nodes)-1] }

// All iterates from the front node (depth 0) to the root cause.
func (c *Chain) All() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		n := c.Len()
		for depth := 0; depth < n; depth++ {
			if !yield(depth, c.nodes[n-1-depth]) {
				return
			}
		}
	}
}

// Backward iterates from the root cause to the front node. The index is the
// node's depth, so it counts down to 0.
func (c *Chain) Backward() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		n := c.Len()
		for i := 0; i < n; i++ {
			if !yield(n-1-i, c.nodes[i]) {
				return
			}
		}
	}
}

// ErrorURIs returns the node identifiers from front to back.
func (c *Chain) ErrorURIs() []string {
	out := make([]string, 0, c.Len())
	for _, n := range c.All() {
		out = append(out, n.uri)
	}
	return out
}

// Render returns one line per node, front first. Each line ends with a
// newline and is indented two spaces deeper than the previous one:
//
//	com.example.db.load: cannot load table
//	  com.example.file.open (name: abc.txt): cannot open file
//
// An empty chain renders as the empty string.
func (c *Chain) Render() string {
	var b strings.Builder
	for depth, n := range c.All() {
		b.WriteString(strings.Repeat(" ", depth*2))
		n.writeTo(&b)
		b.WriteByte('\n')
	}
	return b.String()
}

// String is Render.
func (c *Chain) String() string { return c.Render() }

// Format implements fmt.Formatter.
//
//	%s, %v  front description (same as Error)
//	%q      quoted front description
//	%+v     full rendered chain
func (c *Chain) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, c.Render())
			return
		}
		_, _ = io.WriteString(s, c.Error())
	case 's':
		_, _ = io.WriteString(s, c.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", c.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(*errchain.Chain=%s)", verb, c.Error())
	}
}

// LogValue implements slog.LogValuer, so a chain passed to a structured
// logger is recorded as a group rather than as its one-line message.
func (c *Chain) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("uri", c.MainErrorURI()),
		slog.String("message", c.What()),
		slog.Int("depth", c.Len()),
		slog.String("chain", c.Render()),
	)
}

// ErrorChain returns c. Domain error types that embed *Chain get it by
// promotion, which is how As finds the chain inside them.
func (c *Chain) ErrorChain() *Chain { return c }

type chainCarrier interface {
	ErrorChain() *Chain
}

// As finds the first chain in err's tree: a *Chain itself or any error
// that embeds one.
func As(err error) (*Chain, bool) {
	var cc chainCarrier
	if err == nil || !errors.As(err, &cc) {
		return nil, false
	}
	c := cc.ErrorChain()
	if c == nil {
		return nil, false
	}
	return c, true
}

// URIOf returns the front identifier of the first chain in err's tree, or
// "" when err holds no chain.
func URIOf(err error) string {
	if c, ok := As(err); ok && !c.Empty() {
		return c.MainErrorURI()
	}
	return ""
}
