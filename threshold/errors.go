package threshold

import "errors"

var (
	// ErrRangeUnparseable indicates a range expression could not be parsed,
	// for example because its finite start is greater than its finite end.
	ErrRangeUnparseable = errors.New("threshold: range format incorrect")

	// ErrWarningWithinCritical indicates the warning range can never alert
	// because every value it alerts on is already critical.
	ErrWarningWithinCritical = errors.New("threshold: warning level is a subset of critical and will not be alerted")
)
