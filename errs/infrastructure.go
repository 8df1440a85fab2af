package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Infrastructure Errors: the persistence or identity collaborator being
// unreachable or misconfigured. These never surface their internals to the
// caller; the Responder renders them as a generic failure.
var (
	ErrConfig             = errors.New("configuration error")
	ErrEnvVarMissing      = errors.New("environment variable missing")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrEmailRelay         = errors.New("email relay failed")
)

func NewConfigError(configName string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfig,
		Details:    fmt.Sprintf("Invalid configuration: %s", configName),
		Cause:      cause,
	}
}

func NewEnvironmentVariableError(varName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrEnvVarMissing,
		Details:    fmt.Sprintf("Required environment variable not set: %s", varName),
	}
}

func NewServiceUnavailableError(service string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrServiceUnavailable,
		Details:    fmt.Sprintf("%s is currently unavailable", service),
		Cause:      cause,
	}
}

func NewEmailRelayError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrEmailRelay,
		Details:    "Failed to send email",
		Cause:      cause,
	}
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfig)
}

func IsServiceUnavailable(err error) bool {
	return errors.Is(err, ErrServiceUnavailable)
}

func IsEmailRelay(err error) bool {
	return errors.Is(err, ErrEmailRelay)
}
