package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Upstream (backend gateway) error sentinels. The portfolio backend is an
// external collaborator: a request either never completes (ErrUnreachable) or
// completes with a non-success status (ErrRequestFailed). Callers must not
// assume a parsed body exists behind either.
var (
	ErrUnreachable   = errors.New("backend unreachable")
	ErrRequestFailed = errors.New("backend request failed")
	ErrLoginRejected = errors.New("login rejected")
)

// NewUnreachableError wraps a transport-level failure (the request never got a
// response).
func NewUnreachableError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrUnreachable,
		Details:    fmt.Sprintf("Failed to reach backend during %s", operation),
		Cause:      cause,
	}
}

// NewUpstreamError wraps a non-success status returned by the backend.
func NewUpstreamError(operation string, status int) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrRequestFailed,
		Details:    fmt.Sprintf("Backend returned status %d during %s", status, operation),
	}
}

// NewLoginRejectedError reports invalid admin credentials.
func NewLoginRejectedError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrLoginRejected,
		Details:    "ACCESO_DENEGADO: Credenciales incorrectas",
	}
}

func IsUnreachable(err error) bool {
	return errors.Is(err, ErrUnreachable)
}

func IsRequestFailed(err error) bool {
	return errors.Is(err, ErrRequestFailed)
}

func IsLoginRejected(err error) bool {
	return errors.Is(err, ErrLoginRejected)
}
