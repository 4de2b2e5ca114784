package delivery

import (
	"errors"
	"fmt"
)

// Kind classifies a delivery failure.
type Kind string

const (
	// KindRetryable failures are transient: network errors, timeouts, 429 and 5xx.
	KindRetryable Kind = "retryable"
	// KindTerminal failures will not succeed on retry: validation and most 4xx.
	KindTerminal Kind = "terminal"
	// KindInvalidToken means the device token is unregistered or malformed.
	KindInvalidToken Kind = "invalid_token"
)

var (
	ErrNoToken   = errors.New("device token is required")
	ErrNoTopic   = errors.New("topic is required")
	ErrNoTokens  = errors.New("at least one device token is required")
	ErrNoChannel = errors.New("no delivery channel configured")
)

// Error is returned by every gateway and provider send.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Retryable(op string, err error) *Error {
	return &Error{Kind: KindRetryable, Op: op, Err: err}
}

func Terminal(op string, err error) *Error {
	return &Error{Kind: KindTerminal, Op: op, Err: err}
}

func InvalidToken(op string, err error) *Error {
	return &Error{Kind: KindInvalidToken, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain. Errors that
// were never classified are treated as retryable.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindRetryable
}

func IsRetryable(err error) bool {
	return err != nil && KindOf(err) == KindRetryable
}

func IsInvalidToken(err error) bool {
	return err != nil && KindOf(err) == KindInvalidToken
}
