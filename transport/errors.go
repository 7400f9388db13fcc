package transport

import "errors"

var (
	// ErrInvalidCapacity is returned by NewParser when asked to build a
	// parser with a non-positive payload capacity.
	ErrInvalidCapacity = errors.New("transport: parser capacity must be positive")

	// ErrFrameTooLarge is returned by NewBufferedEmitter when the supplied
	// payload is longer than the emitter was configured to carry.
	ErrFrameTooLarge = errors.New("transport: payload exceeds frame capacity")
)
