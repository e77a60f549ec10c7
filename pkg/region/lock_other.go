//go:build !unix

package region

// lockRegion is a no-op on non-unix platforms: flock has no portable
// equivalent there, so Open degrades to the single-process invariant
// without advisory locking (see doc.go).
func lockRegion(fd int) error { return nil }

// unlockRegion is the no-op counterpart of lockRegion.
func unlockRegion(fd int) error { return nil }

// Lock is a no-op on non-unix platforms.
func (r *Region) Lock() error { return nil }

// Unlock is a no-op on non-unix platforms.
func (r *Region) Unlock() error { return nil }
