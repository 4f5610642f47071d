package errors

import "fmt"

var (
	ErrInvalidMessage  = fmt.Errorf("invalid message")
	ErrMessageNotFound = fmt.Errorf("message not found")
	ErrInvalidBook     = fmt.Errorf("invalid book")
	ErrBookNotFound    = fmt.Errorf("book not found")
	ErrWorkerPanic     = fmt.Errorf("worker panic")
)
