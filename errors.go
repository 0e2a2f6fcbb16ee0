package dit

import "errors"

var (
	ErrNotResolved   = errors.New("dit: name not resolved")
	ErrSubscribed    = errors.New("dit: already subscribed to topic")
	ErrNotSubscribed = errors.New("dit: not subscribed to topic")
	ErrClosed        = errors.New("dit: client is closed")
)
