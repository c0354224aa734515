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

package apis

// ErrorView is the serializable shape of a chain.
//
// It lists every node front first, with parameters in insertion order, so a
// receiver can rebuild an equivalent chain.
type ErrorView struct {
	// URI is the identifier of the front node.
	URI string `json:"uri"`
	// Code is the resolved classification code. May be empty when the view
	// was built without a mapper.
	Code string `json:"code,omitempty"`
	// Message is the description of the front node.
	Message string `json:"message"`
	// Nodes holds the whole chain, front first.
	Nodes []NodeView `json:"nodes,omitempty"`
}

// NodeView is one chain node.
type NodeView struct {
	URI         string      `json:"uri"`
	Description string      `json:"description"`
	Params      []ParamView `json:"params,omitempty"`
}

// ParamView is one name/value pair. Params are a list, not a map, because
// order matters and names may repeat.
type ParamView struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
