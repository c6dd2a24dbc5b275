package markup

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrEmptyPayload is returned when decoding an empty msgpack payload.
var ErrEmptyPayload = errors.New("markup: empty payload")

// Marshal encodes a tree as msgpack for hosts that consume the structure
// instead of serialized text.
func Marshal(n *Node) ([]byte, error) {
	if n == nil {
		return nil, errors.New("markup: node is nil")
	}
	payload, err := msgpack.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("markup: encode tree: %w", err)
	}
	return payload, nil
}

// Unmarshal decodes a tree produced by Marshal.
func Unmarshal(data []byte) (*Node, error) {
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}
	var out Node
	if err := msgpack.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("markup: decode tree: %w", err)
	}
	return &out, nil
}
