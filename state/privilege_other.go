//go:build !unix

package state

import "os"

// Privileged reports false: there is no setuid on this platform.
func Privileged() bool {
	return false
}

// EffectiveUID returns the effective user id, or -1 where there is none.
func EffectiveUID() int {
	return os.Geteuid()
}
