package message

import (
	"encoding/binary"
	"io"
)

// UnconnectedPong is the reply a server sends to an UnconnectedPing. Data
// holds the server id string, a semicolon-delimited description of the
// server that is decoded separately.
type UnconnectedPong struct {
	// SendTimestamp is the time in milliseconds since the server started.
	SendTimestamp int64
	ServerGUID    int64
	// StatusLength is the byte length of Data as declared by the server.
	StatusLength int16
	Data         []byte
}

// UnmarshalBinary decodes a pong from data, which must hold the datagram
// with the leading packet ID byte already stripped. The declared status
// length comes from the server, so every read is bounds-checked against it
// before any field is touched; a declared length that is negative or runs
// past the end of data returns io.ErrUnexpectedEOF.
func (pk *UnconnectedPong) UnmarshalBinary(data []byte) error {
	if len(data) < 34 {
		return io.ErrUnexpectedEOF
	}
	n := int16(binary.BigEndian.Uint16(data[32:]))
	if n < 0 || len(data) < 34+int(n) {
		return io.ErrUnexpectedEOF
	}
	pk.SendTimestamp = int64(binary.BigEndian.Uint64(data))
	pk.ServerGUID = int64(binary.BigEndian.Uint64(data[8:]))
	// Magic: 16 bytes.
	pk.StatusLength = n
	pk.Data = append([]byte(nil), data[34:34+n]...)
	return nil
}

// MarshalBinary encodes the pong into a datagram, including the leading
// packet ID byte. StatusLength is derived from Data rather than taken from
// the field.
func (pk *UnconnectedPong) MarshalBinary() (data []byte, err error) {
	b := make([]byte, 35+len(pk.Data))
	b[0] = IDUnconnectedPong
	binary.BigEndian.PutUint64(b[1:], uint64(pk.SendTimestamp))
	binary.BigEndian.PutUint64(b[9:], uint64(pk.ServerGUID))
	copy(b[17:], Magic[:])
	binary.BigEndian.PutUint16(b[33:], uint16(len(pk.Data)))
	copy(b[35:], pk.Data)
	return b, nil
}
