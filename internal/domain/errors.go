package domain

import "errors"

var (
	ErrProfileNotFound   = errors.New("scheduling profile not found")
	ErrNotConfigured     = errors.New("scheduling setup not completed")
	ErrNoContent         = errors.New("no quotes available for selected interests")
	ErrInvalidWindow     = errors.New("notification window must end after it starts")
	ErrInvalidCount      = errors.New("unsupported notification count")
	ErrHandleSetNotFound = errors.New("handle set not found")
)
