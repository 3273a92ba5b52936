package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrBusinessIDRequired      = errors.New("X-Business-Id header is required")
	ErrOutletIDRequired        = errors.New("X-Outlet-Id header is required")
)
