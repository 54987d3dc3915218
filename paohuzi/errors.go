package paohuzi

import "errors"

var (
	ErrInvalidTileValue      = errors.New("invalid tile value")
	ErrDuplicatePendingDraw  = errors.New("drawn tile not resolved")
	ErrIllegalGroupFormation = errors.New("illegal group formation")
	ErrTileNotOwned          = errors.New("tile not owned")
	ErrMalformedHandSize     = errors.New("malformed hand size")
)
