package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/services/character"
)

// runFunc performs one service call and returns what should be printed
type runFunc func(ctx context.Context, args []string) (interface{}, error)

func jsonCommand(use, short string, args cobra.PositionalArgs, run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := run(cmd.Context(), args)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newCharacterCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "character",
		Aliases: []string{"char"},
		Short:   "RPG characters",
	}

	svc := func() character.Service { return c.app.Characters }

	cmd.AddCommand(
		newCharacterCreateCmd(c),
		jsonCommand("get <user-id>", "Show a character", cobra.ExactArgs(1),
			func(ctx context.Context, args []string) (interface{}, error) {
				return svc().GetCharacter(ctx, &character.GetCharacterInput{CharacterID: args[0]})
			}),
		jsonCommand("add-xp <user-id> <amount>", "Grant experience", cobra.ExactArgs(2),
			func(ctx context.Context, args []string) (interface{}, error) {
				amount, err := strconv.ParseInt(args[1], 10, 64)
				if err != nil {
					return nil, errors.InvalidArgumentf("amount %q is not a number", args[1])
				}
				return svc().AddXP(ctx, &character.AddXPInput{CharacterID: args[0], Amount: amount})
			}),
		jsonCommand("adventure <user-id> <dungeon-id>", "Start an adventure", cobra.ExactArgs(2),
			func(ctx context.Context, args []string) (interface{}, error) {
				return svc().StartAdventure(ctx, &character.StartAdventureInput{CharacterID: args[0], DungeonID: args[1]})
			}),
		jsonCommand("complete-adventure <user-id>", "Collect a finished adventure", cobra.ExactArgs(1),
			func(ctx context.Context, args []string) (interface{}, error) {
				return svc().CompleteAdventure(ctx, &character.CompleteAdventureInput{CharacterID: args[0]})
			}),
		jsonCommand("train <user-id> <stat>", "Start training a stat", cobra.ExactArgs(2),
			func(ctx context.Context, args []string) (interface{}, error) {
				return svc().StartTraining(ctx, &character.StartTrainingInput{CharacterID: args[0], Stat: entities.Stat(args[1])})
			}),
		jsonCommand("complete-training <user-id> [stat]", "Finish training", cobra.RangeArgs(1, 2),
			func(ctx context.Context, args []string) (interface{}, error) {
				input := &character.CompleteTrainingInput{CharacterID: args[0]}
				if len(args) == 2 {
					input.Stat = entities.Stat(args[1])
				}
				return svc().CompleteTraining(ctx, input)
			}),
		jsonCommand("rest <user-id>", "Start resting", cobra.ExactArgs(1),
			func(ctx context.Context, args []string) (interface{}, error) {
				return svc().StartRest(ctx, &character.StartRestInput{CharacterID: args[0]})
			}),
		jsonCommand("complete-rest <user-id>", "Finish resting", cobra.ExactArgs(1),
			func(ctx context.Context, args []string) (interface{}, error) {
				return svc().CompleteRest(ctx, &character.CompleteRestInput{CharacterID: args[0]})
			}),
		jsonCommand("daily <user-id>", "Claim the daily reward", cobra.ExactArgs(1),
			func(ctx context.Context, args []string) (interface{}, error) {
				return svc().ClaimDaily(ctx, &character.ClaimDailyInput{CharacterID: args[0]})
			}),
		jsonCommand("equip <user-id> <item-id>", "Equip an item from the bag", cobra.ExactArgs(2),
			func(ctx context.Context, args []string) (interface{}, error) {
				return svc().EquipItem(ctx, &character.EquipItemInput{CharacterID: args[0], ItemID: args[1]})
			}),
		jsonCommand("unequip <user-id> <slot>", "Return an equipped item to the bag", cobra.ExactArgs(2),
			func(ctx context.Context, args []string) (interface{}, error) {
				return svc().UnequipItem(ctx, &character.UnequipItemInput{CharacterID: args[0], Slot: entities.Slot(args[1])})
			}),
		jsonCommand("use <user-id> <item-id>", "Use a consumable", cobra.ExactArgs(2),
			func(ctx context.Context, args []string) (interface{}, error) {
				return svc().UseItem(ctx, &character.UseItemInput{CharacterID: args[0], ItemID: args[1]})
			}),
		newCharacterTopCmd(c),
	)

	return cmd
}

func newCharacterCreateCmd(c *cli) *cobra.Command {
	var ids identityFlags
	cmd := &cobra.Command{
		Use:   "create <user-id> <class-id>",
		Short: "Create a level 1 character",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.app.Characters.CreateCharacter(cmd.Context(), &character.CreateCharacterInput{
				Identity: ids.identity(args[0]),
				ClassID:  args[1],
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

func newCharacterTopCmd(c *cli) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the character leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.app.Characters.GetTopCharacters(cmd.Context(), &character.GetTopCharactersInput{Limit: limit})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of characters to show")
	return cmd
}

func newCatalogCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Static game data",
	}

	svc := func() character.Service { return c.app.Characters }

	cmd.AddCommand(
		jsonCommand("classes", "List playable classes", cobra.NoArgs,
			func(ctx context.Context, _ []string) (interface{}, error) {
				out, err := svc().ListClasses(ctx, &character.ListClassesInput{})
				if err != nil {
					return nil, err
				}
				return out.Classes, nil
			}),
		jsonCommand("dungeons", "List dungeons", cobra.NoArgs,
			func(ctx context.Context, _ []string) (interface{}, error) {
				out, err := svc().ListDungeons(ctx, &character.ListDungeonsInput{})
				if err != nil {
					return nil, err
				}
				return out.Dungeons, nil
			}),
		jsonCommand("quests", "List quests", cobra.NoArgs,
			func(ctx context.Context, _ []string) (interface{}, error) {
				out, err := svc().ListQuests(ctx, &character.ListQuestsInput{})
				if err != nil {
					return nil, err
				}
				return out.Quests, nil
			}),
		jsonCommand("items", "List items", cobra.NoArgs,
			func(ctx context.Context, _ []string) (interface{}, error) {
				out, err := svc().ListItems(ctx, &character.ListItemsInput{})
				if err != nil {
					return nil, err
				}
				return out.Items, nil
			}),
	)

	return cmd
}
