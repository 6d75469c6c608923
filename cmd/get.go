package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/valapi/valorant"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <resource> <uuid>",
	Short: "Fetch a single entry by UUID",
	Long: `Fetch one entry of a resource type by its UUID. Supported resources:
agents, buddies, buddylevels, bundles, ceremonies, competitivetiers,
contenttiers, contracts, currencies, events, gamemodes, equippables.`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	opts := fetchOptions()
	uuid := args[1]

	switch strings.ToLower(args[0]) {
	case "agents":
		agent, err := client.Agents.FetchByUUID(ctx, uuid, opts...)
		if err != nil {
			return err
		}
		printAgent(agent)
		return nil
	case "buddies":
		return getNamed(func() (*valorant.Buddy, error) {
			return client.Buddies.FetchByUUID(ctx, uuid, opts...)
		})
	case "buddylevels":
		return getNamed(func() (*valorant.BuddyLevel, error) {
			return client.Buddies.FetchLevelByUUID(ctx, uuid, opts...)
		})
	case "bundles":
		return getNamed(func() (*valorant.Bundle, error) {
			return client.Bundles.FetchByUUID(ctx, uuid, opts...)
		})
	case "ceremonies":
		return getNamed(func() (*valorant.Ceremony, error) {
			return client.Ceremonies.FetchByUUID(ctx, uuid, opts...)
		})
	case "competitivetiers":
		episode, err := client.CompetitiveTiers.FetchByUUID(ctx, uuid, opts...)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n", episode.AssetObjectName, episode.UUID)
		for _, tier := range episode.Tiers {
			fmt.Printf("  %3d  %s\n", tier.Tier, tier.TierName)
		}
		return nil
	case "contenttiers":
		return getNamed(func() (*valorant.ContentTier, error) {
			return client.ContentTiers.FetchByUUID(ctx, uuid, opts...)
		})
	case "contracts":
		return getNamed(func() (*valorant.Contract, error) {
			return client.Contracts.FetchByUUID(ctx, uuid, opts...)
		})
	case "currencies":
		return getNamed(func() (*valorant.Currency, error) {
			return client.Currencies.FetchByUUID(ctx, uuid, opts...)
		})
	case "events":
		return getNamed(func() (*valorant.Event, error) {
			return client.Events.FetchByUUID(ctx, uuid, opts...)
		})
	case "gamemodes":
		return getNamed(func() (*valorant.Gamemode, error) {
			return client.Gamemodes.FetchByUUID(ctx, uuid, opts...)
		})
	case "equippables":
		return getNamed(func() (*valorant.GamemodeEquippable, error) {
			return client.Gamemodes.FetchEquippableByUUID(ctx, uuid, opts...)
		})
	default:
		return fmt.Errorf("unknown resource %q", args[0])
	}
}

func getNamed[T entry](fetch func() (*T, error)) error {
	e, err := fetch()
	if err != nil {
		return err
	}
	name := (*e).String()
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Println(name)
	return nil
}

func printAgent(agent *valorant.Agent) {
	fmt.Printf("%s\n", agent.DisplayName)
	if agent.Role != nil {
		fmt.Printf("Role: %s\n", agent.Role.DisplayName)
	}
	if agent.Description != "" {
		fmt.Printf("\n%s\n", agent.Description)
	}
	if len(agent.Abilities) > 0 {
		fmt.Println("\nAbilities:")
		for _, ability := range agent.Abilities {
			fmt.Printf("  %-10s %s\n", ability.Slot, ability.DisplayName)
		}
	}
}
