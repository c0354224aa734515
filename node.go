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

import "strings"

// Node is one link of a Chain: a single error occurrence.
//
// It carries:
//   - URI: stable, machine-readable identifier such as
//     "com.example.storage.open_failed" (see package uri for the
//     canonical form);
//   - Params: ordered context values;
//   - Description: human-readable text.
//
// The identifier and description never change once the node is built.
// Only the owning chain may append parameters, and only to its front node.
type Node struct {
	uri         string
	params      *Params
	description string
}

func newNode(uri string, params *Params, description string) Node {
	return Node{uri: uri, params: params.clone(), description: description}
}

// URI returns the error identifier.
func (n Node) URI() string { return n.uri }

// Description returns the human-readable description.
func (n Node) Description() string { return n.description }

// Params returns a copy of the node's parameters.
func (n Node) Params() *Params { return n.params.clone() }

// String renders the node on one line, without a trailing newline:
//
//	<uri>: <description>
//	<uri> (<name>: <value>, ...): <description>
func (n Node) String() string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

func (n Node) writeTo(b *strings.Builder) {
	b.WriteString(n.uri)
	if !n.params.Empty() {
		b.WriteString(" (")
		b.WriteString(n.params.String())
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(n.description)
}
