package region

// Hardcoded implementation limits.
//
// These exist to keep the mmap length (an int on 32-bit platforms) and the
// tail-fill loop away from overflow, not to promise any resource ceiling.
// Violations are treated as configuration errors and return ErrZeroSize or
// a wrapped ErrNotOpenable.
const (
	// minRegionSize is the smallest size Open writes when it creates a new
	// file, so a freshly created region is never zero-sized. It does not
	// guarantee room for a model header; models reject regions too small
	// for theirs.
	minRegionSize = 1

	// maxRegionSize bounds preferredSize to keep ftruncate/mmap arguments
	// comfortably within platform int ranges.
	maxRegionSize = 1 << 32

	// erasedByte is the fill value for freshly extended tail bytes.
	erasedByte = 0xFF
)
