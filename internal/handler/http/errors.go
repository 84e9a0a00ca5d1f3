// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware. Callers can match
// against them with [errors.Is].
var (
	// ErrNoCredentialsProvided is returned when the incoming request carries
	// neither a session cookie nor an "Authorization" header.
	ErrNoCredentialsProvided = errors.New("no session cookie or `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)
