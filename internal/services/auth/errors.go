package auth

import "errors"

var (
	// ErrInvalidCredentials covers unknown email, inactive account and wrong
	// password alike so the login response never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registering an already used email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidRole is returned when registering with an unknown role.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidRefreshToken covers missing, revoked and expired refresh
	// tokens; the caller cannot distinguish the cases.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrInvalidAccessToken is returned for malformed, tampered, expired or
	// wrongly signed access tokens.
	ErrInvalidAccessToken = errors.New("invalid or expired token")
)
