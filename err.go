package motd

import (
	"errors"
	"fmt"
)

var (
	// ErrBind is returned when no local UDP endpoint could be created to
	// send the ping from. Retrying without changing the environment is
	// unlikely to help.
	ErrBind = errors.New("no local endpoint could be bound")

	// ErrSend is returned when the ping could not be transmitted to the
	// target, including when the address could not be resolved.
	ErrSend = errors.New("ping could not be sent")

	// ErrTimeout is returned when no pong arrived before the deadline.
	// The ping or the pong may simply have been lost; UDP gives no way to
	// tell the difference from an unresponsive server.
	ErrTimeout = errors.New("no pong received before the deadline")

	// ErrTruncated is returned when a pong is shorter than its fixed
	// header or than the status length the header declares.
	ErrTruncated = errors.New("pong shorter than its declared layout")

	// ErrTooFewFields is returned when the server id string carries fewer
	// than the 4 fields every server must send.
	ErrTooFewFields = errors.New("server id string misses required fields")
)

// FieldError describes a token of the server id string that was present at
// its position but could not be parsed as the type that position requires.
// A token that is simply absent never produces a FieldError; absence is
// covered by the default substitution reported through Pong.StatusOK.
type FieldError struct {
	// Field is the name of the status field, such as "protocol_version".
	Field string
	// Value is the offending token as received.
	Value string
	Err   error
}

// Error returns a message naming the field, the token and the underlying
// parse failure.
func (err *FieldError) Error() string {
	return fmt.Sprintf("server id string field %v: cannot parse %q: %v", err.Field, err.Value, err.Err)
}

// Unwrap returns the underlying parse failure.
func (err *FieldError) Unwrap() error {
	return err.Err
}
