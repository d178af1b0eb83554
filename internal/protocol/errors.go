// Package protocol encodes and decodes the JSON frames exchanged with the conversational agent.
package protocol

import "fmt"

// DecodeError is returned for any inbound frame that cannot be turned into an Event
type DecodeError struct {
	Type    string // frame type, empty if it could not be read
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	prefix := "decode error"
	if e.Type != "" {
		prefix = fmt.Sprintf("decode error (%s)", e.Type)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
