//go:build !windows

package secure

import "golang.org/x/sys/unix"

// mlock attempts to lock the memory region containing data so it is never
// written to swap. Returns false (not an error) if the platform refuses,
// e.g. over an rlimit.
func mlock(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return unix.Mlock(data) == nil
}

// munlock unlocks a region previously locked by mlock.
func munlock(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Munlock(data)
}
