package eventfsm

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownState is wrapped by every problem that names an unregistered state
	ErrUnknownState = errors.New("state not registered")

	// ErrDuplicateTransition is reported in strict mode when a (from, event)
	// pair is registered more than once
	ErrDuplicateTransition = errors.New("duplicate transition")

	// ErrSentinel is reported when the zero "no state" / "no event" value is
	// used where a real identifier is required
	ErrSentinel = errors.New("sentinel value used as identifier")

	// ErrReentrant is returned by Run when called from inside an action
	ErrReentrant = errors.New("run called while dispatching")
)

// ConfigError collects the problems found while validating a definition
type ConfigError struct {
	Problems []error
}

func (e *ConfigError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid definition: " + e.Problems[0].Error()
	}
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return fmt.Sprintf("invalid definition (%d problems): %s", len(e.Problems), strings.Join(msgs, "; "))
}

// Unwrap exposes the individual problems to errors.Is / errors.As
func (e *ConfigError) Unwrap() []error {
	return e.Problems
}
