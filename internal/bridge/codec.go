// Package bridge implements the local RPC link to the native backend: named
// commands with JSON-serializable arguments and returns, carried over gRPC
// with a JSON codec. Backend failures travel as a structured {code, message}
// object inside the gRPC status.
package bridge

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype used by the bridge.
const CodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec marshals request and reply values with encoding/json. Both ends
// of the bridge register it, so no generated message types are needed.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return CodecName
}
