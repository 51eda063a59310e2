package motd

import (
	"errors"
	"testing"

	"github.com/mcpetools/motd/internal/message"
)

// pongFixture returns a marshalled unconnected pong datagram carrying the
// server id string passed.
func pongFixture(t *testing.T, uptime, guid int64, status string) []byte {
	t.Helper()
	data, err := (&message.UnconnectedPong{SendTimestamp: uptime, ServerGUID: guid, Data: []byte(status)}).MarshalBinary()
	if err != nil {
		t.Fatalf("error marshalling pong fixture: %v", err)
	}
	return data
}

func TestPong_UnmarshalBinary(t *testing.T) {
	data := pongFixture(t, 8523941, -1537457088, "MCPE;My Server;618;1.20.40;5;20;13253860892328930865;Bedrock level;Survival;1;19132;19133")

	pong := &Pong{}
	if err := pong.UnmarshalBinary(data); err != nil {
		t.Fatalf("error decoding pong: %v", err)
	}
	if pong.ID != 0x1c {
		t.Errorf("packet ID was %#x, expected 0x1c", pong.ID)
	}
	if pong.Uptime != 8523941 {
		t.Errorf("uptime was %v, expected 8523941", pong.Uptime)
	}
	if pong.ServerGUID != -1537457088 {
		t.Errorf("server GUID was %v, expected -1537457088", pong.ServerGUID)
	}
	if pong.Magic != message.Magic {
		t.Errorf("magic was %x, expected %x", pong.Magic, message.Magic)
	}
	if int(pong.StatusLength) != len(pong.StatusRaw) {
		t.Errorf("status length was %v, expected %v", pong.StatusLength, len(pong.StatusRaw))
	}
	if !pong.StatusOK {
		t.Error("status with all fields was not marked parsed ok")
	}
	if pong.Status.MOTD != "My Server" || pong.Status.PortV6 != 19133 {
		t.Errorf("status parsed as %+v", pong.Status)
	}
}

func TestPong_UnmarshalBinaryTruncated(t *testing.T) {
	data := pongFixture(t, 1, 2, "MCPE;My Server;618;1.20.40")

	// Everything below the 35-byte fixed layout, and everything below the
	// declared status length, is truncated.
	for n := 0; n < len(data); n++ {
		pong := &Pong{}
		if err := pong.UnmarshalBinary(data[:n]); !errors.Is(err, ErrTruncated) {
			t.Fatalf("decoding %v bytes returned %v, expected ErrTruncated", n, err)
		}
	}
}

func TestPong_UnmarshalBinaryUnknownID(t *testing.T) {
	data := pongFixture(t, 1, 2, "MCPE;My Server;618;1.20.40")
	data[0] = 0xfe

	// The packet ID is decoded, not validated.
	pong := &Pong{}
	if err := pong.UnmarshalBinary(data); err != nil {
		t.Fatalf("error decoding pong with unexpected ID: %v", err)
	}
	if pong.ID != 0xfe {
		t.Fatalf("packet ID was %#x, expected 0xfe", pong.ID)
	}
}

func TestPong_UnmarshalBinaryBadStatus(t *testing.T) {
	pong := &Pong{}
	if err := pong.UnmarshalBinary(pongFixture(t, 1, 2, "MCPE;My Server")); !errors.Is(err, ErrTooFewFields) {
		t.Fatalf("decoding pong with short status returned %v, expected ErrTooFewFields", err)
	}

	var fieldErr *FieldError
	if err := pong.UnmarshalBinary(pongFixture(t, 1, 2, "MCPE;My Server;abc;1.20.40")); !errors.As(err, &fieldErr) {
		t.Fatalf("decoding pong with malformed status returned %v, expected a FieldError", err)
	}
}

func TestPong_UnmarshalBinaryLossyStatus(t *testing.T) {
	data := pongFixture(t, 1, 2, "MCPE;My \xff\xfeServer;618;1.20.40")

	pong := &Pong{}
	if err := pong.UnmarshalBinary(data); err != nil {
		t.Fatalf("error decoding pong with invalid UTF-8: %v", err)
	}
	if pong.Status.MOTD != "My �Server" {
		t.Fatalf("MOTD was %q, expected invalid bytes replaced", pong.Status.MOTD)
	}
}
