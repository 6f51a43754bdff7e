package service

import "errors"

var (
	ErrValidation        = errors.New("validation")          // 400
	ErrAuth              = errors.New("unauthorized")        // 401
	ErrNotFound          = errors.New("not found")           // 404
	ErrInsufficientStock = errors.New("insufficient stock")  // 400
)
