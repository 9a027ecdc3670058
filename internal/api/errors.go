package api

import (
	"errors"
	"net/http"

	"github.com/samcharles93/gemmtune/internal/gemm"
)

var ErrInvalidRequest = errors.New("invalid_request")

type invalidRequestError struct {
	msg string
}

func (e invalidRequestError) Error() string {
	return e.msg
}

func (e invalidRequestError) Unwrap() error {
	return ErrInvalidRequest
}

func newInvalidRequest(msg string) error {
	return invalidRequestError{msg: msg}
}

// statusFor maps engine errors onto HTTP statuses. Bad input is the
// caller's fault; an unsupported combination is well formed but cannot be
// served on this device.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, gemm.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_request_error"
	case errors.Is(err, gemm.ErrDataTypeUnsupported),
		errors.Is(err, gemm.ErrBlockSizeUnsupported),
		errors.Is(err, gemm.ErrExtensionUnsupported),
		errors.Is(err, gemm.ErrDeviceLimitExceeded):
		return http.StatusUnprocessableEntity, "unsupported_error"
	default:
		return http.StatusInternalServerError, "server_error"
	}
}
