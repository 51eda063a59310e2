package motd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mcpetools/motd/internal/message"
)

// Pong holds the decoded contents of an unconnected pong datagram.
type Pong struct {
	// ID is the packet ID byte as received. Servers send 0x1c, but the
	// value is decoded rather than validated, so a reply with a different
	// ID still decodes.
	ID byte `json:"id"`
	// Uptime is the time in milliseconds since the server started.
	Uptime int64 `json:"uptime_ms"`
	// ServerGUID is the GUID the server identifies itself with.
	ServerGUID int64 `json:"server_guid"`
	// Magic is the unconnected message sequence. The received bytes are
	// not compared against the known constant; the constant is echoed here
	// verbatim, so a reply with a mangled magic still decodes.
	Magic [16]byte `json:"magic"`
	// StatusLength is the byte length of the server id string as declared
	// by the server.
	StatusLength int16 `json:"status_length"`
	// StatusRaw is the server id string exactly as received, decoded as
	// UTF-8 with invalid sequences replaced.
	StatusRaw string `json:"status_raw"`
	// StatusOK is false when optional fields were absent from the server
	// id string and defaults were substituted into Status.
	StatusOK bool `json:"status_parsed_ok"`
	// Status is the parsed server id string.
	Status ServerStatus `json:"status"`
}

// UnmarshalBinary decodes a full unconnected pong datagram, including the
// leading packet ID byte. A datagram shorter than the fixed header, or
// shorter than the status length the header declares, fails with
// ErrTruncated. A server id string that exists but cannot be parsed fails
// with ErrTooFewFields or a FieldError.
func (pong *Pong) UnmarshalBinary(data []byte) error {
	if len(data) < 1 {
		return fmt.Errorf("%w: empty datagram", ErrTruncated)
	}
	pk := message.UnconnectedPong{}
	if err := pk.UnmarshalBinary(data[1:]); err != nil {
		return fmt.Errorf("%w: %v bytes received", ErrTruncated, len(data))
	}
	pong.ID = data[0]
	pong.Uptime = pk.SendTimestamp
	pong.ServerGUID = pk.ServerGUID
	pong.Magic = message.Magic
	pong.StatusLength = pk.StatusLength
	pong.StatusRaw = lossyString(pk.Data)

	status, complete, err := parseServerStatus(pong.StatusRaw)
	if err != nil {
		return err
	}
	pong.Status = status
	pong.StatusOK = complete
	return nil
}

// lossyString decodes b as UTF-8, replacing invalid sequences with the
// Unicode replacement character. Decoding the server id string never fails
// on malformed text.
func lossyString(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
