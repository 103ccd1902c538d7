package shape

import "errors"

// ErrInvalidShape indicates an empty partition, a non-positive row length,
// rows that increase downwards, or malformed shape text.
var ErrInvalidShape = errors.New("shape: invalid partition")
