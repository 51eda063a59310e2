// Package message holds the wire representation of the two unconnected
// RakNet messages involved in a status query: the unconnected ping sent by
// the client and the unconnected pong returned by the server.
package message

const (
	IDUnconnectedPing byte = 0x01
	IDUnconnectedPong byte = 0x1c
)

// Magic is a sequence of bytes which is found in every unconnected message
// sent in RakNet. Servers ignore unconnected pings that do not carry it.
var Magic = [16]byte{0x00, 0xff, 0xff, 0x00, 0xfe, 0xfe, 0xfe, 0xfe, 0xfd, 0xfd, 0xfd, 0xfd, 0x12, 0x34, 0x56, 0x78}
