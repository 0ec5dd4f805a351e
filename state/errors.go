package state

import "errors"

var (
	// ErrInvalidKeyCharacter indicates an explicit key name contains a
	// character other than an ASCII letter, digit or '_'.
	ErrInvalidKeyCharacter = errors.New("state: invalid character for keyname - only alphanumerics or '_'")

	// ErrInvalidPluginName indicates a plugin name that cannot be used as a
	// single path element.
	ErrInvalidPluginName = errors.New("state: invalid plugin name")

	// ErrDigestTooShort indicates a digest producing fewer than KeyBytes bytes.
	ErrDigestTooShort = errors.New("state: digest output too short")

	// ErrPayloadInvalid indicates a payload that cannot be stored on a
	// single state line.
	ErrPayloadInvalid = errors.New("state: invalid payload")

	// ErrStateDirectory indicates the state directory could not be created.
	ErrStateDirectory = errors.New("state: cannot create directory")

	// ErrStateWriteFailure indicates the state file could not be published.
	ErrStateWriteFailure = errors.New("state: cannot write state file")
)

// Reasons a state file reads as absent. They are logged, never returned.
var (
	errFormatVersion   = errors.New("format version mismatch")
	errDataVersion     = errors.New("data version mismatch")
	errFutureTimestamp = errors.New("timestamp in the future")
	errNoPayload       = errors.New("no payload line")
)
