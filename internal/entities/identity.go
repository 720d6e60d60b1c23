// Package entities provides the records and reference definitions of the
// progression engine.
package entities

import (
	"github.com/disgoorg/snowflake/v2"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Identity is the chat-platform user an event belongs to. ID is a platform
// snowflake; name and avatar are refreshed on every activity.
type Identity struct {
	ID          string
	DisplayName string
	AvatarURL   string
}

// ValidateUserID checks that id is a platform snowflake
func ValidateUserID(id string) error {
	if id == "" {
		return errors.InvalidArgument("user ID is required")
	}
	if _, err := snowflake.Parse(id); err != nil {
		return errors.InvalidArgumentf("user ID %q is not a valid snowflake", id)
	}
	return nil
}

// Validate checks the identity fields
func (i Identity) Validate() error {
	return ValidateUserID(i.ID)
}
