package utils

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrPageNotFound     = errors.New("page out of range")
	ErrInvalidPrice     = errors.New("invalid price")
	ErrDatabaseError    = errors.New("database error")
	ErrUploadFailed     = errors.New("upload failed")
)
