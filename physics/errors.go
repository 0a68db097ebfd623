package physics

import "errors"

var ErrDegenerateConfiguration = errors.New("physics: degenerate configuration")
