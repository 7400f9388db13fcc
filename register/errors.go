package register

import "errors"

// ErrValueTooLarge is returned by a typed constructor when the supplied
// data exceeds that variant's fixed capacity.
var ErrValueTooLarge = errors.New("register: value exceeds variant capacity")
