package plugin

import "errors"

var (
	// ErrStateNotEnabled is returned by state operations before EnableState.
	ErrStateNotEnabled = errors.New("plugin: state not enabled")

	// ErrTimeout is the error of a result cut short by the plugin timeout.
	ErrTimeout = errors.New("plugin: timed out")

	// ErrNilChecker is returned when Run is given no checker.
	ErrNilChecker = errors.New("plugin: checker is nil")
)
