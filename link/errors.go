package link

import "errors"

var (
	// ErrClosed is returned by Session operations attempted after Close.
	ErrClosed = errors.New("link: session is closed")
	// ErrTimeout is returned by Call when ctx expires before a matching
	// response frame arrives.
	ErrTimeout = errors.New("link: call timed out waiting for a response")
	// ErrUndecodable is returned by Call when a delivered result carries
	// no decoded message. Run delivers only decoded messages to a pending
	// Call, so an undecodable frame goes to OnMessage instead and Call
	// does not return this error for it.
	ErrUndecodable = errors.New("link: response frame did not decode as a standard message")
)
