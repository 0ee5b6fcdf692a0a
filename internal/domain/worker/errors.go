package worker

import "errors"

var (
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrNationalIDExists = errors.New("national id already registered")
	ErrNotADriver       = errors.New("worker is not a driver")
)
