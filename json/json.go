// Package json persists parley data as JSON: the conversation history
// snapshot and a single-file key-value store.
package json

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/parley"
)

// messageDTO is the JSON representation of a Message.
type messageDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MarshalHistory serializes messages as a JSON array of {role, content}.
// A nil or empty slice encodes as [].
func MarshalHistory(msgs []parley.Message) ([]byte, error) {
	dtos := make([]messageDTO, len(msgs))
	for i, m := range msgs {
		if err := parley.ValidateMessage(m); err != nil {
			return nil, fmt.Errorf("message %d: %w", i, err)
		}
		dtos[i] = messageDTO{Role: string(m.Role), Content: m.Content}
	}
	return json.Marshal(dtos)
}

// UnmarshalHistory deserializes a JSON array of {role, content}. Every
// failure wraps parley.ErrPersistenceRead.
func UnmarshalHistory(data []byte) ([]parley.Message, error) {
	var dtos []messageDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("%w: %w", parley.ErrPersistenceRead, err)
	}
	msgs := make([]parley.Message, len(dtos))
	for i, dto := range dtos {
		m := parley.Message{Role: parley.Role(dto.Role), Content: dto.Content}
		if err := parley.ValidateMessage(m); err != nil {
			return nil, fmt.Errorf("%w: message %d: %w", parley.ErrPersistenceRead, i, err)
		}
		msgs[i] = m
	}
	return msgs, nil
}
