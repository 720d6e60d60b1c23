package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// identityFlags carries the display fields a chat platform would supply
type identityFlags struct {
	name   string
	avatar string
}

func (f *identityFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "display name")
	cmd.Flags().StringVar(&f.avatar, "avatar", "", "avatar URL")
}

func (f *identityFlags) identity(userID string) entities.Identity {
	return entities.Identity{
		ID:          userID,
		DisplayName: f.name,
		AvatarURL:   f.avatar,
	}
}
