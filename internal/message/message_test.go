package message

import (
	"bytes"
	"io"
	"testing"
)

func TestUnconnectedPing_MarshalBinary(t *testing.T) {
	expected := []byte{
		0x01,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0xff, 0xff, 0x00, 0xfe, 0xfe, 0xfe, 0xfe, 0xfd, 0xfd, 0xfd, 0xfd, 0x12, 0x34, 0x56, 0x78,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	data, err := (&UnconnectedPing{}).MarshalBinary()
	if err != nil {
		t.Fatalf("error marshalling unconnected ping: %v", err)
	}
	if !bytes.Equal(data, expected) {
		t.Fatalf("unconnected ping was %x, expected %x", data, expected)
	}
}

func TestUnconnectedPing_RoundTrip(t *testing.T) {
	ping := &UnconnectedPing{SendTimestamp: 1234567, ClientGUID: -98765}
	data, _ := ping.MarshalBinary()

	decoded := &UnconnectedPing{}
	if err := decoded.UnmarshalBinary(data[1:]); err != nil {
		t.Fatalf("error unmarshalling unconnected ping: %v", err)
	}
	if *decoded != *ping {
		t.Fatalf("decoded unconnected ping was %+v, expected %+v", decoded, ping)
	}
}

func TestUnconnectedPong_RoundTrip(t *testing.T) {
	pong := &UnconnectedPong{SendTimestamp: 8523941, ServerGUID: -1537457088, Data: []byte("MCPE;My Server;618;1.20.40")}
	data, _ := pong.MarshalBinary()
	if data[0] != IDUnconnectedPong {
		t.Fatalf("unconnected pong had packet ID %x, expected %x", data[0], IDUnconnectedPong)
	}

	decoded := &UnconnectedPong{}
	if err := decoded.UnmarshalBinary(data[1:]); err != nil {
		t.Fatalf("error unmarshalling unconnected pong: %v", err)
	}
	if decoded.SendTimestamp != pong.SendTimestamp {
		t.Errorf("send timestamp was %v, expected %v", decoded.SendTimestamp, pong.SendTimestamp)
	}
	if decoded.ServerGUID != pong.ServerGUID {
		t.Errorf("server GUID was %v, expected %v", decoded.ServerGUID, pong.ServerGUID)
	}
	if decoded.StatusLength != int16(len(pong.Data)) {
		t.Errorf("status length was %v, expected %v", decoded.StatusLength, len(pong.Data))
	}
	if !bytes.Equal(decoded.Data, pong.Data) {
		t.Errorf("data was %q, expected %q", decoded.Data, pong.Data)
	}
}

func TestUnconnectedPong_Short(t *testing.T) {
	pong := &UnconnectedPong{SendTimestamp: 1, ServerGUID: 2, Data: []byte("MCPE;x;618;1.20.40")}
	data, _ := pong.MarshalBinary()

	// Every datagram shorter than the full layout must fail, whether it
	// cuts off the fixed header or the declared status string.
	for n := 1; n < len(data); n++ {
		if err := (&UnconnectedPong{}).UnmarshalBinary(data[1:n]); err != io.ErrUnexpectedEOF {
			t.Fatalf("unmarshalling %v bytes returned %v, expected io.ErrUnexpectedEOF", n-1, err)
		}
	}
	if err := (&UnconnectedPong{}).UnmarshalBinary(data[1:]); err != nil {
		t.Fatalf("unmarshalling the full pong returned %v", err)
	}
}

func TestUnconnectedPong_NegativeLength(t *testing.T) {
	pong := &UnconnectedPong{Data: []byte("MCPE;x;618;1.20.40")}
	data, _ := pong.MarshalBinary()
	// A declared length with the sign bit set must not be interpreted as a
	// huge unsigned count.
	data[33] = 0xff
	data[34] = 0xff
	if err := (&UnconnectedPong{}).UnmarshalBinary(data[1:]); err != io.ErrUnexpectedEOF {
		t.Fatalf("unmarshalling pong with negative length returned %v, expected io.ErrUnexpectedEOF", err)
	}
}
