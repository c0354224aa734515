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

package adapter

import (
	"errors"
	"fmt"

	"dirpx.dev/errchain"
	"dirpx.dev/errchain/apis"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrMalformedView is returned by FromStruct when the struct does not have
// the shape produced by ToStruct.
var ErrMalformedView = errors.New("adapter: malformed error view")

// ToDescriptor flattens a chained error and its resolved status into an
// ErrorDescriptor for logs and traces.
func ToDescriptor(e apis.ChainedError, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	uris := e.ErrorURIs()
	d := apis.ErrorDescriptor{
		URI:        e.MainErrorURI(),
		Depth:      len(uris),
		Code:       string(st.Code),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Error(),
	}
	if len(uris) > 0 {
		d.RootURI = uris[len(uris)-1]
	}
	return d
}

// ToView converts a chain into its public ErrorView, front node first.
// Nothing is redacted: every node and parameter is copied as-is.
func ToView(c *errchain.Chain, st apis.Status) apis.ErrorView {
	if c == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{
		URI:     c.MainErrorURI(),
		Code:    string(st.Code),
		Message: c.What(),
	}
	for _, n := range c.All() {
		nv := apis.NodeView{URI: n.URI(), Description: n.Description()}
		for _, p := range n.Params().All() {
			nv.Params = append(nv.Params, apis.ParamView{Name: p.Name, Value: p.Value})
		}
		v.Nodes = append(v.Nodes, nv)
	}
	return v
}

// ToChain rebuilds a chain from a view. Nodes are wrapped from the root
// cause forward, so the result renders exactly like the original.
//
// A view without nodes yields a single-node chain from URI and Message, or
// an empty chain when the URI is unset.
func ToChain(v apis.ErrorView) *errchain.Chain {
	if len(v.Nodes) == 0 {
		if v.URI == "" || v.URI == errchain.UnspecifiedURI {
			return new(errchain.Chain)
		}
		return errchain.New(v.URI, v.Message)
	}
	var c *errchain.Chain
	for i := len(v.Nodes) - 1; i >= 0; i-- {
		n := v.Nodes[i]
		var ps *errchain.Params
		for _, p := range n.Params {
			if ps == nil {
				ps = errchain.P(p.Name, p.Value)
			} else {
				ps.Add(p.Name, p.Value)
			}
		}
		c = errchain.WrapWithParams(n.URI, ps, n.Description, c)
	}
	return c
}

// ToStruct encodes a view as a protobuf Struct, the form carried in gRPC
// status details and HTTP bodies. Nodes and params are lists so that order
// and repeated names survive.
func ToStruct(v apis.ErrorView) (*structpb.Struct, error) {
	m := map[string]any{
		"uri":     v.URI,
		"message": v.Message,
	}
	if v.Code != "" {
		m["code"] = v.Code
	}
	if len(v.Nodes) > 0 {
		nodes := make([]any, 0, len(v.Nodes))
		for _, n := range v.Nodes {
			nm := map[string]any{
				"uri":         n.URI,
				"description": n.Description,
			}
			if len(n.Params) > 0 {
				ps := make([]any, 0, len(n.Params))
				for _, p := range n.Params {
					ps = append(ps, map[string]any{"name": p.Name, "value": p.Value})
				}
				nm["params"] = ps
			}
			nodes = append(nodes, nm)
		}
		m["nodes"] = nodes
	}
	return structpb.NewStruct(m)
}

// FromStruct decodes a Struct produced by ToStruct. Unknown fields are
// ignored. A missing "uri" field or a node of the wrong kind is an error.
func FromStruct(s *structpb.Struct) (apis.ErrorView, error) {
	if s == nil {
		return apis.ErrorView{}, fmt.Errorf("%w: nil struct", ErrMalformedView)
	}
	f := s.GetFields()
	if _, ok := f["uri"].GetKind().(*structpb.Value_StringValue); !ok {
		return apis.ErrorView{}, fmt.Errorf("%w: missing uri", ErrMalformedView)
	}
	v := apis.ErrorView{
		URI:     f["uri"].GetStringValue(),
		Code:    f["code"].GetStringValue(),
		Message: f["message"].GetStringValue(),
	}
	for i, nv := range f["nodes"].GetListValue().GetValues() {
		ns := nv.GetStructValue()
		if ns == nil {
			return apis.ErrorView{}, fmt.Errorf("%w: node %d is not an object", ErrMalformedView, i)
		}
		nf := ns.GetFields()
		node := apis.NodeView{
			URI:         nf["uri"].GetStringValue(),
			Description: nf["description"].GetStringValue(),
		}
		for j, pv := range nf["params"].GetListValue().GetValues() {
			ps := pv.GetStructValue()
			if ps == nil {
				return apis.ErrorView{}, fmt.Errorf("%w: node %d param %d is not an object", ErrMalformedView, i, j)
			}
			pf := ps.GetFields()
			node.Params = append(node.Params, apis.ParamView{
				Name:  pf["name"].GetStringValue(),
				Value: pf["value"].GetStringValue(),
			})
		}
		v.Nodes = append(v.Nodes, node)
	}
	return v, nil
}
