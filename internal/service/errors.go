package service

import "errors"

// MaxPasswordBytes: bcrypt не принимает пароли длиннее.
const MaxPasswordBytes = 72

var (
	ErrLoginTaken         = errors.New("login already taken")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrPasswordTooLong    = errors.New("password is longer than 72 bytes")
	ErrUserNotFound       = errors.New("user not found")
	ErrBlogNotFound       = errors.New("blog not found")
	ErrBlogExists         = errors.New("user already has a blog")
	ErrArticleNotFound    = errors.New("article not found")
)
