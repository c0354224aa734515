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

// Package grpcx maps chains onto gRPC statuses.
//
// On the server, UnaryServerInterceptor and StreamServerInterceptor resolve
// the status code through an apis.Mapper and attach the whole chain as a
// status detail. On the client, FromError turns that detail back into a
// chain.
package grpcx
