package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-chat/internal/schemas"
	"github.com/jonathan/resume-chat/internal/types"
)

var validate = validator.New()

// Decode turns a raw inbound frame into an Event. Any problem (invalid JSON,
// unknown type, missing required field, final resume failing the schema) is
// reported as a *DecodeError.
func Decode(raw []byte) (Event, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &DecodeError{Message: "invalid JSON", Cause: err}
	}
	if err := validate.Struct(&env); err != nil {
		return nil, &DecodeError{Message: "missing frame type", Cause: err}
	}

	switch Kind(env.Type) {
	case KindQuestion:
		var q Question
		if err := decodeData(env, &q); err != nil {
			return nil, err
		}
		return &q, nil
	case KindUpdate:
		var u Update
		if err := decodeData(env, &u); err != nil {
			return nil, err
		}
		return &u, nil
	case KindComplete:
		var c Complete
		if err := decodeData(env, &c); err != nil {
			return nil, err
		}
		if err := schemas.ValidateResume(c.FinalResume); err != nil {
			return nil, &DecodeError{Type: env.Type, Message: "final resume does not match schema", Cause: err}
		}
		var doc types.Resume
		if err := json.Unmarshal(c.FinalResume, &doc); err != nil {
			return nil, &DecodeError{Type: env.Type, Message: "failed to decode final resume", Cause: err}
		}
		c.Resume = &doc
		return &c, nil
	case KindError:
		var e AgentError
		if err := decodeData(env, &e); err != nil {
			return nil, err
		}
		return &e, nil
	}

	return nil, &DecodeError{Type: env.Type, Message: "unknown frame type"}
}

func decodeData(env Envelope, target any) error {
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return &DecodeError{Type: env.Type, Message: "missing data"}
	}
	if err := json.Unmarshal(data, target); err != nil {
		return &DecodeError{Type: env.Type, Message: "invalid data", Cause: err}
	}
	if err := validate.Struct(target); err != nil {
		return &DecodeError{Type: env.Type, Message: "missing required field", Cause: err}
	}
	return nil
}

// EncodeAnswer builds the outbound frame for the user's text. The text is sent
// as typed; callers decide whether it is worth sending.
func EncodeAnswer(text string) ([]byte, error) {
	data, err := json.Marshal(Answer{Type: KindAnswer, Content: text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode answer: %w", err)
	}
	return data, nil
}

// DecodeAnswer reads back an outbound answer frame, e.g. from a session journal.
func DecodeAnswer(raw []byte) (string, error) {
	if err := schemas.ValidateAnswer(raw); err != nil {
		return "", &DecodeError{Type: string(KindAnswer), Message: "invalid answer frame", Cause: err}
	}
	var answer Answer
	if err := json.Unmarshal(raw, &answer); err != nil {
		return "", &DecodeError{Type: string(KindAnswer), Message: "invalid answer frame", Cause: err}
	}
	return answer.Content, nil
}

// Encode builds an inbound frame of the given kind. It is what an agent sends
// and is used to script conversations.
func Encode(kind Kind, data any) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s data: %w", kind, err)
	}
	frame, err := json.Marshal(Envelope{Type: string(kind), Data: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s frame: %w", kind, err)
	}
	return frame, nil
}

// EncodeQuestion builds a question frame; field may be empty.
func EncodeQuestion(text, field string) ([]byte, error) {
	return Encode(KindQuestion, Question{Text: text, Field: field})
}

// EncodeUpdate builds an update frame carrying value for field.
func EncodeUpdate(field string, value any) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode update value: %w", err)
	}
	return Encode(KindUpdate, Update{Field: field, Value: raw})
}

// EncodeComplete builds a complete frame carrying the final document.
func EncodeComplete(message string, doc *types.Resume) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode final resume: %w", err)
	}
	return Encode(KindComplete, Complete{Message: message, FinalResume: raw})
}

// EncodeError builds an agent error frame.
func EncodeError(message string) ([]byte, error) {
	return Encode(KindError, AgentError{Message: message})
}
