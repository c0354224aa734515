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

// Package uri provides parsing, normalization and validation for error
// identifiers ("error URIs").
//
// An error URI is the stable, machine-readable name of one kind of failure,
// written as dot-separated segments in reverse-domain order, e.g.
// "com.example.storage.open_failed". A URI starting with "." is relative:
// the organisation prefix is implied by context.
//
// errchain itself accepts any string as an identifier. This package is for
// callers that want to enforce the canonical form, and for the mapper, which
// matches rules segment by segment.
package uri
