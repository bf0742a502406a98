package liteapi

import (
	"errors"
	"fmt"
)

// ProviderError wraps an upstream transport or business-rule failure. Status
// is the upstream HTTP status, or zero for transport errors that never got a
// response. The gateway never retries these; retry policy belongs to callers.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("liteapi: %s", e.Message)
	}
	return fmt.Sprintf("liteapi: %d - %s", e.Status, e.Message)
}

// AsProviderError unwraps err into a *ProviderError when possible.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
