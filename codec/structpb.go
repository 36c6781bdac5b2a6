package codec

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Struct serializes string-keyed result maps through protobuf's well-known
// Struct type (binary wire format). Values must be JSON-compatible kinds —
// the same constraint key derivation already imposes on arguments.
type Struct struct{}

var _ Codec[map[string]any] = Struct{}

func (Struct) Encode(m map[string]any) ([]byte, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func (Struct) Decode(b []byte) (map[string]any, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return s.AsMap(), nil
}
