// Package state persists a small versioned record between invocations of a
// check plugin.
//
// # Keys
//
// A Key addresses one state file. Its name is either given explicitly,
// restricted to ASCII letters, digits and '_', or derived by hashing the
// plugin's full argument list so that differently configured invocations
// get independent state.
//
// # Location
//
// Files live at <prefix>/<euid>/<plugin>/<name>. The prefix comes from
// MP_STATE_PATH, then NAGIOS_PLUGIN_STATE_DIRECTORY, then DefaultPrefix.
// The environment is ignored when the process runs with elevated
// privileges.
//
// # File Format
//
//	# NP State file
//	1            format version
//	3            data version
//	1700000000   unix timestamp
//	payload      up to 1023 bytes, single line
//
// Lines starting with '#' are ignored. A file whose versions do not match,
// whose timestamp lies in the future, or which lacks a payload reads as
// absent.
//
// # Concurrency
//
// Writes are published atomically, so readers never see a torn file.
// Concurrent writers to the same key race and the last one wins.
package state
