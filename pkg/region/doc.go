// Package region manages the byte-region backing for an EEPROM-style image:
// a file opened or created at a preferred size, memory-mapped read-write,
// with freshly extended tail bytes filled erased (0xFF).
//
// # Basic Usage
//
//	r, err := region.Open("/tmp/ee.bin", 256)
//	if err != nil {
//	    // handle
//	}
//	defer r.Close()
//
//	payload := r.Bytes()[16:] // model-specific header size
//
// # Concurrency
//
// A Region is owned by one process for its lifetime; two processes opening
// the same file concurrently is unsupported (see spec §5). Open takes a
// non-blocking advisory flock on the backing file and Close releases it, so
// a second Open of a locked file fails with ErrLocked (on platforms without
// flock this is a no-op). Lock/Unlock release and retake that lock without
// closing the Region.
//
// # Error Handling
//
// Open returns plain errors wrapping the failing syscall. On failure, Open
// deletes the file only if it did not pre-exist, and never leaves a partial
// mapping behind.
package region
