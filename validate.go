package parley

import "fmt"

// ValidateMessage checks that a message has a known role.
// Empty content is allowed; the model may return an empty answer.
func ValidateMessage(msg Message) error {
	if !msg.Role.Valid() {
		return fmt.Errorf("unknown role %q: %w", msg.Role, ErrValidation)
	}
	return nil
}
