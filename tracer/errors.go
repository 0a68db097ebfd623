package tracer

import "errors"

var ErrInvalidOptions = errors.New("tracer: invalid options")
