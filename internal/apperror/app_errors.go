package apperror

import "errors"

var (
	ErrInsufficientCategories = errors.New("not enough categories to build a grid")
	ErrInvalidCellIndex       = errors.New("invalid cell index")
	ErrInvalidEntityName      = errors.New("pokemon does not match both categories")
	ErrCellAlreadyFilled      = errors.New("cell is already filled")
	ErrSessionNotFound        = errors.New("session not found")
	ErrNotFound               = errors.New("not found")
)
