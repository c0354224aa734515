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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/errchain"
	"dirpx.dev/errchain/apis"
	"dirpx.dev/errchain/code"
	"dirpx.dev/errchain/mapper"
)

func newMapper(t *testing.T) apis.Mapper {
	t.Helper()
	m, err := mapper.New(
		mapper.WithClass("com.example.storage", code.Unavailable),
		mapper.WithClass("com.example.input", code.Invalid),
	)
	require.NoError(t, err)
	return m
}

func storageChain() *errchain.Chain {
	root := errchain.New("com.example.storage.pg.connect", "connection refused").Add("host", "db1")
	return errchain.Wrap("com.example.repo.load_user", "cannot load user", root).Add("id", 42)
}

func TestToStatus(t *testing.T) {
	c := storageChain()
	st := ToStatus(c, newMapper(t))

	assert.Equal(t, codes.Unavailable, st.Code())
	assert.Equal(t, "cannot load user", st.Message())
	require.Len(t, st.Details(), 1)
	_, ok := st.Details()[0].(*structpb.Struct)
	assert.True(t, ok)
}

func TestUnaryServerInterceptor_Chain(t *testing.T) {
	c := storageChain()
	want := c.Render()

	icpt := UnaryServerInterceptor(newMapper(t))
	handler := func(ctx context.Context, req any) (any, error) {
		return nil, fmt.Errorf("handler: %w", c)
	}
	resp, err := icpt(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: "/svc/Get"}, handler)
	assert.Nil(t, resp)
	require.Error(t, err)

	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unavailable, st.Code())

	v, ok := ExtractView(err)
	require.True(t, ok)
	assert.Equal(t, "com.example.repo.load_user", v.URI)
	assert.Equal(t, "unavailable", v.Code)
	require.Len(t, v.Nodes, 2)
	assert.Equal(t, "com.example.storage.pg.connect", v.Nodes[1].URI)

	back, ok := FromError(err)
	require.True(t, ok)
	assert.Equal(t, want, back.Render())
}

func TestUnaryServerInterceptor_PassThrough(t *testing.T) {
	icpt := UnaryServerInterceptor(newMapper(t))
	info := &grpc.UnaryServerInfo{FullMethod: "/svc/Get"}

	plain := errors.New("plain")
	_, err := icpt(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, plain
	})
	assert.Same(t, plain, err)

	resp, err := icpt(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return "ok", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestStreamServerInterceptor(t *testing.T) {
	icpt := StreamServerInterceptor(newMapper(t))
	info := &grpc.StreamServerInfo{FullMethod: "/svc/Watch"}

	err := icpt(nil, nil, info, func(any, grpc.ServerStream) error {
		return errchain.New("com.example.input.bad_filter", "bad filter")
	})
	assert.Equal(t, codes.InvalidArgument, gstatus.Code(err))

	err = icpt(nil, nil, info, func(any, grpc.ServerStream) error { return nil })
	assert.NoError(t, err)
}

func TestToError_Unclassified(t *testing.T) {
	err := ToError(errchain.New("org.other.thing", "boom"), newMapper(t))
	st, _ := gstatus.FromError(err)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "boom", st.Message())
}

func TestExtractView_Absent(t *testing.T) {
	_, ok := ExtractView(nil)
	assert.False(t, ok)

	_, ok = ExtractView(errors.New("plain"))
	assert.False(t, ok)

	_, ok = ExtractView(gstatus.Error(codes.NotFound, "no details"))
	assert.False(t, ok)

	// a Struct detail of another shape is ignored
	other, err := structpb.NewStruct(map[string]any{"reason": "x"})
	require.NoError(t, err)
	st, err := gstatus.New(codes.Aborted, "other").WithDetails(other)
	require.NoError(t, err)
	_, ok = ExtractView(st.Err())
	assert.False(t, ok)

	c, ok := FromError(st.Err())
	assert.False(t, ok)
	assert.Nil(t, c)
}

type fileError struct{ *errchain.Chain }

func TestToError_DomainError(t *testing.T) {
	m, err := mapper.New(mapper.WithClass("com.example.file", code.NotFound))
	require.NoError(t, err)

	var de error = &fileError{errchain.New("com.example.file.noopen", "Unable to open file").Add("name", "abc.txt")}
	got := ToError(fmt.Errorf("open: %w", de), m)

	assert.Equal(t, codes.NotFound, gstatus.Code(got))
	back, ok := FromError(got)
	require.True(t, ok)
	assert.Equal(t, "com.example.file.noopen (name: abc.txt): Unable to open file\n", back.Render())
}

func TestToStatus_NilMapper(t *testing.T) {
	st := ToStatus(storageChain(), nil)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "cannot load user", st.Message())

	v, ok := ExtractView(st.Err())
	require.True(t, ok)
	assert.Equal(t, "internal", v.Code)

	icpt := UnaryServerInterceptor(nil)
	_, err := icpt(context.Background(), nil, &grpc.UnaryServerInfo{}, func(context.Context, any) (any, error) {
		return nil, storageChain()
	})
	assert.Equal(t, codes.Internal, gstatus.Code(err))
}
