package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidUsername     = errors.New("username must be 3-63 characters: lowercase letters, digits, '-' or '_'")
	ErrReservedUsername    = errors.New("username collides with a reserved route")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrPageNotFound     = errors.New("page not found")
	ErrPremiumRequired  = errors.New("premium subscription required")
	ErrInvalidAlias     = errors.New("alias must be 3-63 characters: lowercase letters, digits, '-' or '_'")
	ErrAliasUnavailable = errors.New("alias is not available")
)
