// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors for bearer-token extraction from the "Authorization"
// header. The strict auth middleware turns each into a 401; the optional
// variant on public page routes treats them all as an anonymous visitor.
var (
	// ErrEmptyAuthorizationHeader: the request carries no "Authorization"
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header cannot be split into a
	// scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme is present but the token value is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
