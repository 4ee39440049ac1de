// Package common defines shared constants and sentinel errors used across
// client and server layers of authgate. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound           = errors.New("not found")
	ErrorStorageUnavailable = errors.New("storage unavailable")

	// Registration errors.
	ErrorUsernameTaken = errors.New("username already exists")

	// Login errors. ErrorInvalidCredentials deliberately covers both an
	// unknown username and a wrong password, so callers cannot tell the
	// two apart.
	ErrorInvalidCredentials = errors.New("invalid username or password")

	// ErrorDataIntegrity means stored password material is malformed.
	// It is a system fault, not a user error, and must never be reported
	// as ErrorInvalidCredentials.
	ErrorDataIntegrity = errors.New("corrupt credential data")

	// ErrorConfiguration is fatal at startup (e.g. empty signing secret).
	ErrorConfiguration = errors.New("invalid configuration")

	// Token lifecycle errors.
	ErrorInvalidToken = errors.New("invalid token")
	ErrorTokenExpired = errors.New("token expired")
)
