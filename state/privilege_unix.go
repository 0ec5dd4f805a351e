//go:build unix

package state

import "golang.org/x/sys/unix"

// Privileged reports whether the process runs setuid or setgid.
func Privileged() bool {
	return unix.Getuid() != unix.Geteuid() || unix.Getgid() != unix.Getegid()
}

// EffectiveUID returns the effective user id of the process.
func EffectiveUID() int {
	return unix.Geteuid()
}
