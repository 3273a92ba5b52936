package outlet

import "errors"

var (
	ErrOutletNotFound   = errors.New("outlet not found")
	ErrBusinessNotFound = errors.New("business not found")
)
