package engine

import "errors"

// ErrUnknownMode indicates an inverse-mode name ParseMode does not recognize.
var ErrUnknownMode = errors.New("engine: unknown inverse mode")
