package secret

import "errors"

// Sentinel errors for secret resolution.
var (
	// ErrMissingEnv is returned when a ${VAR} reference names an unset variable.
	ErrMissingEnv = errors.New("secret: missing required environment variables")

	// ErrProviderNotRegistered is returned for references to an unknown provider.
	ErrProviderNotRegistered = errors.New("secret: provider is not registered")

	// ErrNotFound is returned when a provider has no value for a reference.
	ErrNotFound = errors.New("secret: not found")

	// ErrEmptyValue is returned by strict resolvers when a provider yields "".
	ErrEmptyValue = errors.New("secret: provider returned empty value")

	// ErrInvalidReference is returned for a reference without provider or ref.
	ErrInvalidReference = errors.New("secret: invalid reference")
)
