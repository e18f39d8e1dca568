package handlestore

import "errors"

var ErrInvalidHandleSetData = errors.New("invalid handle set data")
