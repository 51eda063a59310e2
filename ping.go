// Package motd implements the client side of the unconnected ping/pong
// exchange Minecraft Bedrock servers answer over RakNet, and decodes the
// pong into structured status information.
//
// A query is a single request/response exchange: one fixed 33-byte ping is
// sent from a fresh local endpoint and one pong is received and decoded.
// There are no retries and no sessions; a lost datagram surfaces as
// ErrTimeout.
package motd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/mcpetools/motd/internal/message"
)

// defaultTimeout is the deadline Ping and Status apply to the exchange.
const defaultTimeout = time.Second * 5

// responseBufferSize is the size of the buffer a pong is received into. It
// matches the maximum size of a UDP packet sent over RakNet, well above
// what any server id string occupies.
const responseBufferSize = 1492

// Ping sends an unconnected ping to the address passed and returns the
// decoded unconnected pong. The address may be an IP address or a hostname,
// combined with a port that is separated with ':'. Ping waits up to 5
// seconds for the pong; PingTimeout and PingContext may be used to wait for
// any other duration.
func Ping(address string) (*Pong, error) {
	return PingTimeout(address, defaultTimeout)
}

// PingTimeout sends an unconnected ping to the address passed and returns
// the decoded unconnected pong, giving up after the timeout passed.
func PingTimeout(address string, timeout time.Duration) (*Pong, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return PingContext(ctx, address)
}

// PingContext sends an unconnected ping to the address passed and returns
// the decoded unconnected pong. The deadline of ctx bounds the wait for the
// pong, surfacing as ErrTimeout when exceeded; cancelling ctx aborts the
// wait. A ctx without a deadline makes PingContext wait indefinitely for a
// server that never answers.
func PingContext(ctx context.Context, address string) (*Pong, error) {
	conn, err := net.ListenUDP("udp", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBind, err)
	}
	defer conn.Close()

	addr, err := net.ResolveUDPAddr("udp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSend, err)
	}
	request, _ := (&message.UnconnectedPing{}).MarshalBinary()
	if _, err := conn.WriteTo(request, addr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSend, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
	}
	// Unblock the read when ctx is cancelled before the deadline.
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetReadDeadline(time.Unix(1, 0))
	})
	defer stop()

	b := make([]byte, responseBufferSize)
	// The address the pong arrives from is not validated against the
	// target: servers may answer from a different interface.
	n, _, err := conn.ReadFrom(b)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, fmt.Errorf("reading unconnected pong: %w", ctx.Err())
		}
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("reading unconnected pong: %w", err)
	}

	pong := &Pong{}
	if err := pong.UnmarshalBinary(b[:n]); err != nil {
		return nil, err
	}
	return pong, nil
}

// Status queries the address passed like Ping and returns only the parsed
// server id string of the pong.
func Status(address string) (ServerStatus, error) {
	return StatusTimeout(address, defaultTimeout)
}

// StatusTimeout queries the address passed like PingTimeout and returns
// only the parsed server id string of the pong.
func StatusTimeout(address string, timeout time.Duration) (ServerStatus, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return StatusContext(ctx, address)
}

// StatusContext queries the address passed like PingContext and returns
// only the parsed server id string of the pong.
func StatusContext(ctx context.Context, address string) (ServerStatus, error) {
	pong, err := PingContext(ctx, address)
	if err != nil {
		return ServerStatus{}, err
	}
	return pong.Status, nil
}
