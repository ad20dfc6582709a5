package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrAdminAccessRequired   = errors.New("admin access required")
	ErrTeacherAccessRequired = errors.New("teacher access required")
)
