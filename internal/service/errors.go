package service

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrNotAuthor          = errors.New("caller is not the post author")
	ErrFollowSelf         = errors.New("cannot follow self")
	ErrInvalidImage       = errors.New("unsupported image type")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)
