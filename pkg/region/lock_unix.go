//go:build unix

package region

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// lockRegion takes a non-blocking advisory exclusive flock on fd. Open
// calls this right after the fd is obtained, so a second process opening
// the same path observes the single-owner invariant spec §5 assumes
// instead of silently racing the mmap.
func lockRegion(fd int) error {
	if err := unix.Flock(fd, unix.LOCK_EX|unix.LOCK_NB); err != nil {
		return fmt.Errorf("region: flock: %w: %w", err, ErrLocked)
	}

	return nil
}

// unlockRegion releases a lock taken by lockRegion.
func unlockRegion(fd int) error {
	if err := unix.Flock(fd, unix.LOCK_UN); err != nil {
		return fmt.Errorf("region: funlock: %w", err)
	}

	return nil
}

// Lock takes the advisory exclusive flock explicitly. Open already takes
// it as part of opening the region; Lock/Unlock exist for callers that
// release and reacquire it around some external operation on the same
// fd without closing the Region.
func (r *Region) Lock() error {
	return lockRegion(r.fd)
}

// Unlock releases a lock taken by Lock or implicitly by Open.
func (r *Region) Unlock() error {
	return unlockRegion(r.fd)
}
