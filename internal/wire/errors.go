package wire

import "errors"

// ErrMalformedMessage is returned when a datagram does not follow the line-oriented wire structure, for example a
// member line which does not have exactly three space-separated tokens.
var ErrMalformedMessage = errors.New("wire: malformed message")

// ErrUnknownType is returned when the first line of a datagram is not a valid integer in the 1..6 range.
var ErrUnknownType = errors.New("wire: unknown message type")
