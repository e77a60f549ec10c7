package region

import (
	"bytes"
	"fmt"
	"os"
	"syscall"

	"github.com/natefinch/atomic"
)

// Region is a contiguous writable byte span backed by a memory-mapped file —
// spec §3 "Byte region" and §4.A. It is owned by one process at a time; see
// doc.go for the concurrency model.
type Region struct {
	path   string
	fd     int
	data   []byte
	closed bool
}

// Open opens or creates the file at path and memory-maps it read-write and
// shared, per spec §4.A.
//
// If the file does not exist, it is created (mode 0644) as an all-erased
// (0xFF) image of preferredSize bytes, written atomically so a crash during
// creation never leaves a partial file at path.
//
// If the file exists and is smaller than preferredSize, it is extended
// (never truncated below its existing contents); the new tail bytes
// [oldSize, preferredSize) are filled with 0xFF.
//
// On any failure, the file is deleted only if it did not pre-exist, and no
// partial mapping is left behind.
func Open(path string, preferredSize int) (*Region, error) {
	if preferredSize < 0 || preferredSize > maxRegionSize {
		return nil, fmt.Errorf("region: preferred size %d out of range: %w", preferredSize, ErrZeroSize)
	}

	_, statErr := os.Stat(path)
	preexisted := statErr == nil

	if !preexisted {
		if createErr := createErased(path, preferredSize); createErr != nil {
			return nil, fmt.Errorf("create %s: %w", path, createErr)
		}
	}

	r, openErr := openExisting(path, preferredSize)
	if openErr != nil {
		if !preexisted {
			_ = os.Remove(path)
		}

		return nil, openErr
	}

	return r, nil
}

// createErased atomically writes an all-0xFF file of size n at path, so a
// fresh region always starts in the "empty" state defined by spec §3.
func createErased(path string, n int) error {
	if n < minRegionSize {
		n = minRegionSize
	}

	erased := bytes.Repeat([]byte{erasedByte}, n)

	if err := atomic.WriteFile(path, bytes.NewReader(erased)); err != nil {
		return err
	}

	return os.Chmod(path, 0o644)
}

// openExisting opens path for read-write, extends it to preferredSize if
// necessary (filling the new tail with 0xFF), and mmaps the result.
func openExisting(path string, preferredSize int) (*Region, error) {
	fd, openErr := syscall.Open(path, syscall.O_RDWR|syscall.O_SYNC, 0)
	if openErr != nil {
		return nil, fmt.Errorf("open: %w: %w", openErr, ErrNotOpenable)
	}

	if lockErr := lockRegion(fd); lockErr != nil {
		_ = syscall.Close(fd)
		return nil, lockErr
	}

	var stat syscall.Stat_t

	if fstatErr := syscall.Fstat(fd, &stat); fstatErr != nil {
		_ = syscall.Close(fd)
		return nil, fmt.Errorf("fstat: %w: %w", fstatErr, ErrNotOpenable)
	}

	finalSize := stat.Size
	if int64(preferredSize) > finalSize {
		finalSize = int64(preferredSize)
	}

	if finalSize <= 0 {
		_ = syscall.Close(fd)
		return nil, ErrZeroSize
	}

	if finalSize > stat.Size {
		if truncErr := syscall.Ftruncate(fd, finalSize); truncErr != nil {
			_ = syscall.Close(fd)
			return nil, fmt.Errorf("ftruncate: %w: %w", truncErr, ErrNotOpenable)
		}

		if fillErr := fillErased(fd, stat.Size, finalSize); fillErr != nil {
			_ = syscall.Close(fd)
			return nil, fmt.Errorf("fill tail: %w: %w", fillErr, ErrNotOpenable)
		}
	}

	data, mmapErr := syscall.Mmap(fd, 0, int(finalSize), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if mmapErr != nil {
		_ = syscall.Close(fd)
		return nil, fmt.Errorf("mmap: %w: %w", mmapErr, ErrMap)
	}

	return &Region{path: path, fd: fd, data: data}, nil
}

// fillErased writes 0xFF into [from, to) of fd in fixed-size chunks.
func fillErased(fd int, from, to int64) error {
	const chunkSize = 64 * 1024

	chunk := bytes.Repeat([]byte{erasedByte}, chunkSize)

	for off := from; off < to; {
		n := to - off
		if n > chunkSize {
			n = chunkSize
		}

		if _, err := syscall.Pwrite(fd, chunk[:n], off); err != nil {
			return err
		}

		off += n
	}

	return nil
}

// Bytes returns the mapped byte span. The caller MUST NOT retain it after
// Close.
func (r *Region) Bytes() []byte {
	return r.data
}

// Path returns the backing file path.
func (r *Region) Path() string {
	return r.path
}

// Close forces a disk sync of the backing file, unmaps, and closes it.
// Calling Close twice is a programmer error (spec §4.A).
func (r *Region) Close() error {
	if r.closed {
		return ErrClosed
	}

	r.closed = true

	syncErr := syscall.Fsync(r.fd)

	unmapErr := syscall.Munmap(r.data)
	r.data = nil

	unlockErr := unlockRegion(r.fd)

	closeErr := syscall.Close(r.fd)

	if syncErr != nil {
		return fmt.Errorf("fsync: %w", syncErr)
	}

	if unmapErr != nil {
		return fmt.Errorf("munmap: %w", unmapErr)
	}

	if unlockErr != nil {
		return unlockErr
	}

	if closeErr != nil {
		return fmt.Errorf("close: %w", closeErr)
	}

	return nil
}
