package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("rate limited")
	ErrInternalServerError = errors.New("provider internal error")
	ErrBadGateway          = errors.New("provider unavailable")
)
