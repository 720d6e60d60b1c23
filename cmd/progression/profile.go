package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/services/experience"
)

func newProfileCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Chat experience profiles",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <user-id>",
			Short: "Show a profile with its level progress and rank",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := c.app.Experience.GetProfile(cmd.Context(), &experience.GetProfileInput{UserID: args[0]})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			},
		},
		newProfileTopCmd(c),
		newProfileMessageCmd(c),
		newProfileVoiceCmd(c),
	)

	return cmd
}

func newProfileTopCmd(c *cli) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the XP leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.app.Experience.GetTopProfiles(cmd.Context(), &experience.GetTopProfilesInput{Limit: limit})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of profiles to show")
	return cmd
}

func newProfileMessageCmd(c *cli) *cobra.Command {
	var ids identityFlags
	cmd := &cobra.Command{
		Use:   "message <user-id> <message-length>",
		Short: "Award XP for one chat message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.InvalidArgumentf("message length %q is not a number", args[1])
			}
			out, err := c.app.Experience.AddMessageXP(cmd.Context(), &experience.AddMessageXPInput{
				Identity:      ids.identity(args[0]),
				MessageLength: length,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	ids.register(cmd)
	return cmd
}

func newProfileVoiceCmd(c *cli) *cobra.Command {
	var ids identityFlags
	cmd := &cobra.Command{
		Use:   "voice <user-id> <seconds>",
		Short: "Award XP for a finished stretch of voice time",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return errors.InvalidArgumentf("seconds %q is not a number", args[1])
			}
			out, err := c.app.Experience.AwardVoiceTime(cmd.Context(), &experience.AwardVoiceTimeInput{
				Identity: ids.identity(args[0]),
				Seconds:  seconds,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	ids.register(cmd)
	return cmd
}

func newTitlesCmd(c *cli) *cobra.Command {
	var level int
	cmd := &cobra.Command{
		Use:   "titles",
		Short: "List the level titles, or the title for one level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if level > 0 {
				out, err := c.app.Experience.GetLevelTitle(cmd.Context(), &experience.GetLevelTitleInput{Level: level})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out.Title)
			}

			out, err := c.app.Experience.ListLevelTitles(cmd.Context(), &experience.ListLevelTitlesInput{})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out.Titles)
		},
	}
	cmd.Flags().IntVar(&level, "level", 0, "show the title earned at this level")
	return cmd
}
