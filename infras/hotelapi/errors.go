package hotelapi

import (
	"errors"
	"fmt"
	"reception/shared/failure"
)

// ErrTransport marks failures where no trustworthy answer came back.
var ErrTransport = errors.New("hotel api transport failure")

// ErrSchema marks a response that does not carry the payload key pinned for its action.
var ErrSchema = fmt.Errorf("%w: unexpected response schema", ErrTransport)

// APIError is a well-formed response with success=false.
type APIError struct {
	Action       string
	Message      string
	SystemStatus string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s rejected by hotel api", e.Action)
	}

	return e.Message
}

// NotConfigured reports a rejection caused by missing backend tables.
func (e *APIError) NotConfigured() bool {
	return e.Result().NotConfigured()
}

// Result is the envelope metadata the rejection carried.
func (e *APIError) Result() Result {
	return Result{Message: e.Message, SystemStatus: e.SystemStatus}
}

// IsTransport reports whether err is a transport failure.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// AsAPIError unwraps an application-level rejection.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// ToFailure maps upstream errors to HTTP failures: transport 502, rejection 422.
func ToFailure(err error) error {
	if err == nil {
		return nil
	}

	if apiErr, ok := AsAPIError(err); ok {
		return failure.Unprocessable(apiErr.Error())
	}

	if IsTransport(err) {
		return failure.Upstream(err)
	}

	return err
}
