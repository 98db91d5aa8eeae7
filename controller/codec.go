package controller

import (
	proto "github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
)

// Codec marshals controller messages with gogo/protobuf. It is forced on
// both ends of the connection, since the messages in package pb are not
// registered with the protobuf runtime grpc uses by default.
type Codec struct{}

// Marshal encodes a proto message.
func (Codec) Marshal(v interface{}) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, errors.Errorf("controller: %T is not a proto message", v)
	}
	return proto.Marshal(m)
}

// Unmarshal decodes data into a proto message.
func (Codec) Unmarshal(data []byte, v interface{}) error {
	m, ok := v.(proto.Message)
	if !ok {
		return errors.Errorf("controller: %T is not a proto message", v)
	}
	return proto.Unmarshal(data, m)
}

// Name is the content subtype of the codec.
func (Codec) Name() string { return "proto" }
