package apperror

import "errors"

var (
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrNoLegalMove  = errors.New("no legal move")
	ErrGameFinished = errors.New("game is already finished")
	ErrGameNotFound = errors.New("game not found")

	ErrConcurrentUpdate = errors.New("game was changed by another request, try again")
)
