package util

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrWeakPassword        = errors.New("password must be at least 6 characters long")
	ErrLessonTitleRequired = errors.New("lesson title is required")
	ErrLessonUnknown       = errors.New("unknown lesson")
)
