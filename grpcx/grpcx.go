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

package grpcx

import (
	"context"
	"net/http"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errchain"
	"dirpx.dev/errchain/adapter"
	"dirpx.dev/errchain/apis"
	"dirpx.dev/errchain/code"
)

// ToStatus converts a chain into a gRPC status. The code comes from
// m.Resolve, the message is the front description, and the full chain is
// attached as a google.protobuf.Struct detail (see adapter.ToStruct).
// A nil m resolves every chain to codes.Internal.
func ToStatus(c *errchain.Chain, m apis.Mapper) *gstatus.Status {
	st := apis.Status{Code: code.Internal, HTTP: http.StatusInternalServerError, GRPC: codes.Internal}
	if m != nil {
		st = m.Resolve(c)
	}
	base := gstatus.New(st.GRPC, c.What())

	// If the detail cannot be attached, the bare status still carries
	// the code and message.
	s, err := adapter.ToStruct(adapter.ToView(c, st))
	if err != nil {
		return base
	}
	with, err := base.WithDetails(s)
	if err != nil {
		return base
	}
	return with
}

// ToError converts err into a gRPC status error when it holds a chain.
// Any other error, nil included, is returned unchanged.
func ToError(err error, m apis.Mapper) error {
	c, ok := errchain.As(err)
	if !ok {
		return err
	}
	return ToStatus(c, m).Err()
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that turns
// chains returned by handlers into status errors resolved through m.
// Errors that hold no chain are passed through.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			return nil, ToError(err, m)
		}
		return resp, nil
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		return ToError(handler(srv, ss), m)
	}
}

// ExtractView pulls the chain view out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractView(err error) (apis.ErrorView, bool) {
	if err == nil {
		return apis.ErrorView{}, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return apis.ErrorView{}, false
	}
	for _, d := range st.Proto().GetDetails() {
		s, ok := structDetail(d)
		if !ok {
			continue
		}
		if v, err := adapter.FromStruct(s); err == nil {
			return v, true
		}
	}
	return apis.ErrorView{}, false
}

func structDetail(d *anypb.Any) (*structpb.Struct, bool) {
	s := new(structpb.Struct)
	if !d.MessageIs(s) || d.UnmarshalTo(s) != nil {
		return nil, false
	}
	return s, true
}

// FromError rebuilds the chain carried by a gRPC error. The result renders
// like the chain the server returned.
func FromError(err error) (*errchain.Chain, bool) {
	v, ok := ExtractView(err)
	if !ok {
		return nil, false
	}
	return adapter.ToChain(v), true
}
