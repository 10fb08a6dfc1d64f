package api

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrValidation marks a client-side precondition failure. The request is
// never sent.
var ErrValidation = errors.New("validation failed")

const genericErrorMessage = "Something went wrong. Please try again."

// Error is a failed remote call. Remote rejections carry the HTTP status
// and the server-provided message; network failures carry status 0 and are
// otherwise treated identically. Every Error is scoped to the single action
// that triggered it.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// newRemoteError extracts the server message from a non-2xx body, falling
// back to a generic string when the payload carries none.
func newRemoteError(status int, body []byte) *Error {
	msg := gjson.GetBytes(body, "error").String()
	if msg == "" {
		msg = gjson.GetBytes(body, "message").String()
	}
	if msg == "" {
		msg = genericErrorMessage
	}
	return &Error{Status: status, Message: msg}
}

func newNetworkError(err error) *Error {
	return &Error{Status: 0, Message: fmt.Sprintf("%s: %s", genericErrorMessage, err.Error())}
}
