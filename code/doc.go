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

// Package code defines the classification codes that error URIs are mapped
// to at the transport edge.
//
// An error URI names one precise failure ("com.example.storage.pg.connect");
// a code names the broad class it belongs to ("unavailable"). Codes are
// short, lowercase and underscore-separated.
package code
