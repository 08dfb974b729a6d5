package game

import "errors"

var (
	ErrPlayerOutOfRange = errors.New("player out of range")
	ErrIllegalMove      = errors.New("illegal move")
	ErrInvalidAction    = errors.New("invalid action")
	ErrTensorSize       = errors.New("observation tensor has wrong size")
	ErrNothingToUndo    = errors.New("nothing to undo")
)
