package game

import "errors"

var (
	ErrWallExhausted  = errors.New("tile wall exhausted")
	ErrManualOverflow = errors.New("manual tiles overflow")
	ErrInvalidSeat    = errors.New("invalid seat")
	ErrInvalidConfig  = errors.New("invalid config")
)
