package checkout

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a checkout session does not exist or has
// expired. TTL expiry is the implicit abandon path.
var ErrSessionNotFound = errors.New("checkout session not found or expired")

// FlowError reports a checkout transition that the state machine refuses.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidStateError(msg string) error {
	return &FlowError{Code: "invalidState", Message: msg}
}

func NewSelectionError(msg string) error {
	return &FlowError{Code: "invalidSelection", Message: msg}
}

// IsFlowError reports whether err is a state-machine refusal.
func IsFlowError(err error) bool {
	var fe *FlowError
	return errors.As(err, &fe)
}
