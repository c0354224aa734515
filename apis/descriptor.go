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

// ErrorDescriptor is a flat description of a resolved chain, meant for
// structured logs and tracing attributes.
//
// It uses plain strings and ints so that it can be emitted without
// importing the code or uri packages.
type ErrorDescriptor struct {
	// URI is the identifier of the front node.
	URI string `json:"uri"`

	// RootURI is the identifier of the original cause (the back node).
	// Equal to URI for single-node chains.
	RootURI string `json:"root_uri,omitempty"`

	// Depth is the number of nodes in the chain.
	Depth int `json:"depth"`

	// Code is the resolved classification code.
	Code string `json:"code,omitempty"`

	// HTTPStatus is the resolved HTTP status. 0 means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code as an integer.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the description of the front node.
	Message string `json:"message,omitempty"`
}
