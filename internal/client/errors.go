package client

import "errors"

var (
	// ErrUnauthorized indicates the service rejected the access/secret key
	// pair.
	ErrUnauthorized = errors.New("access denied: check the access and secret keys")

	// ErrProtectionCanceled indicates the protection job was canceled on the
	// service side before finishing.
	ErrProtectionCanceled = errors.New("protection was canceled by the service")
)
