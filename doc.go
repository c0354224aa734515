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

// Package errchain builds and renders chains of causally linked errors.
//
// Each link (a Node) carries a stable dotted identifier, an ordered set of
// named parameters and a human-readable description. Code that catches a
// low-level failure wraps it with higher-level context:
//
//	c := errchain.New("com.example.file.open", "unable to open file").
//	    Add("name", "abc.txt")
//	...
//	return errchain.Wrap("com.example.db.load", "unable to load table", c)
//
// Wrapping moves the nodes of the caught chain into the new one and leaves
// the caught chain empty. The rendered form lists the most specific error
// first and indents every deeper cause by two more spaces:
//
//	com.example.db.load: unable to load table
//	  com.example.file.open (name: abc.txt): unable to open file
//
// The render format is stable and safe to match in tests and log scrapers.
//
// Subpackages carry the transport side: uri validates identifiers, mapper
// resolves chains to HTTP and gRPC statuses, and grpcx / httpx write chains
// to the wire.
package errchain
