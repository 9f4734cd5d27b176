package grid

import "errors"

var (
	ErrBadColor  = errors.New("invalid paint color")
	ErrBadTurn   = errors.New("invalid turn command")
	ErrTruncated = errors.New("machine halted between paint and turn")
	ErrStalled   = errors.New("machine waiting for input mid-command")
)
