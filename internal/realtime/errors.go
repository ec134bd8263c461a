package realtime

import "errors"

var ErrUnknownCollection = errors.New("unknown collection")
