package message

import (
	"encoding/binary"
	"io"
)

// UnconnectedPing is the status request sent to a server outside of any
// session. A status query sends it with a zero timestamp and a zero client
// GUID; servers answer it with an UnconnectedPong regardless of either
// value.
type UnconnectedPing struct {
	SendTimestamp int64
	ClientGUID    int64
}

// MarshalBinary encodes the ping into its fixed 33-byte datagram, including
// the leading packet ID byte.
func (pk *UnconnectedPing) MarshalBinary() (data []byte, err error) {
	b := make([]byte, 33)
	b[0] = IDUnconnectedPing
	binary.BigEndian.PutUint64(b[1:], uint64(pk.SendTimestamp))
	copy(b[9:], Magic[:])
	binary.BigEndian.PutUint64(b[25:], uint64(pk.ClientGUID))
	return b, nil
}

// UnmarshalBinary decodes a ping from data, which must hold the datagram
// with the leading packet ID byte already stripped.
func (pk *UnconnectedPing) UnmarshalBinary(data []byte) error {
	if len(data) < 32 {
		return io.ErrUnexpectedEOF
	}
	pk.SendTimestamp = int64(binary.BigEndian.Uint64(data))
	// Magic: 16 bytes.
	pk.ClientGUID = int64(binary.BigEndian.Uint64(data[24:]))
	return nil
}
