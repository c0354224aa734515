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

// ChainedError is an error made of causally linked nodes, each named by an
// error URI. errchain.Chain implements it.
//
// Adapters and mappers depend on this interface rather than on the concrete
// chain type, so they can also serve domain errors that wrap a chain.
type ChainedError interface {
	error

	// MainErrorURI returns the identifier of the most specific (front)
	// node.
	MainErrorURI() string

	// ErrorURIs returns every node identifier, front first. The result
	// is empty for a drained chain.
	ErrorURIs() []string
}
