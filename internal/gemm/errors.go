package gemm

import "github.com/pkg/errors"

// Error kinds reported by the configuration engine. Callers match them with
// errors.Is; the returned errors carry extra context.
var (
	// ErrInvalidArgument marks a violated precondition, i.e. a caller bug.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDataTypeUnsupported means no table exists for the requested type.
	ErrDataTypeUnsupported = errors.New("data type not supported")
	// ErrBlockSizeUnsupported means a block size is illegal for the path.
	ErrBlockSizeUnsupported = errors.New("block size not supported")
	// ErrExtensionUnsupported means a required device extension is missing.
	ErrExtensionUnsupported = errors.New("extension not supported")
	// ErrDeviceLimitExceeded means a device limit rules the configuration out.
	ErrDeviceLimitExceeded = errors.New("device limit exceeded")
)

// IsRecoverable reports whether err is one of the texture-validation kinds
// that a buffer fallback can absorb.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrBlockSizeUnsupported) ||
		errors.Is(err, ErrExtensionUnsupported) ||
		errors.Is(err, ErrDeviceLimitExceeded)
}
