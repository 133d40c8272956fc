package protocol

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/loom-ui/loom/internal/errors"
)

// Version is the current wire protocol version.
const Version = 1

// Frame types.
const (
	// FrameSnapshot carries a full render-pass snapshot.
	FrameSnapshot uint8 = 0x01
)

// magic identifies loom frames on the wire.
var magic = [2]byte{'L', 'M'}

// headerSize is magic + version + frame type.
const headerSize = 4

// EncodeSnapshot frames a snapshot: a four-byte header (magic, version,
// frame type) followed by the msgpack-encoded payload.
func EncodeSnapshot(s *Snapshot) ([]byte, error) {
	payload, err := msgpack.Marshal(s)
	if err != nil {
		return nil, errors.New("E520").Wrap(err)
	}
	out := make([]byte, 0, headerSize+len(payload))
	out = append(out, magic[0], magic[1], Version, FrameSnapshot)
	return append(out, payload...), nil
}

// DecodeSnapshot validates the frame header and decodes the payload.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	if len(data) < headerSize || data[0] != magic[0] || data[1] != magic[1] {
		return nil, errors.New("E520").WithDetail("frame too short or bad magic")
	}
	if data[2] != Version {
		return nil, errors.New("E521").WithDetail("got version %d, want %d", data[2], Version)
	}
	if data[3] != FrameSnapshot {
		return nil, errors.New("E522").WithDetail("got frame type 0x%02x", data[3])
	}
	var s Snapshot
	if err := msgpack.Unmarshal(data[headerSize:], &s); err != nil {
		return nil, errors.New("E520").Wrap(err)
	}
	return &s, nil
}
