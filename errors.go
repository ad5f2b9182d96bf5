package chainmap

import "errors"

// ErrCapacityOverflow is the cause of the panic raised when the bucket array
// cannot grow any further.
var ErrCapacityOverflow = errors.New("chainmap: capacity overflow")
