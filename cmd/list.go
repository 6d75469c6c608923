package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/valapi/filter"
	"github.com/s0up4200/valapi/valorant"
)

var (
	filterExpr   string
	playableOnly bool
	noUnused     bool
)

const listResources = "agents, buddies, buddylevels, bundles, ceremonies, competitivetiers, contenttiers, contracts, currencies, events, gamemodes, equippables"

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list <resource>",
	Short: "List all entries of a resource",
	Long: `List every entry of one resource type. Supported resources:
` + listResources + `.

Agents support --filter expressions over Name, Role, Playable,
BaseContent, Tags and Abilities, for example:

  valapi list agents --filter 'Role == "Duelist" && Playable'`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression (agents only)")
	listCmd.Flags().BoolVar(&playableOnly, "playable-only", false, "only playable agents (agents only)")
	listCmd.Flags().BoolVar(&noUnused, "no-unused", false, "drop placeholder ranks (competitivetiers only)")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	opts := fetchOptions()

	switch strings.ToLower(args[0]) {
	case "agents":
		return listAgents(ctx, opts)
	case "buddies":
		return listNamed(func() ([]valorant.Buddy, error) {
			return client.Buddies.FetchAll(ctx, opts...)
		})
	case "buddylevels":
		return listNamed(func() ([]valorant.BuddyLevel, error) {
			return client.Buddies.FetchAllLevels(ctx, opts...)
		})
	case "bundles":
		return listNamed(func() ([]valorant.Bundle, error) {
			return client.Bundles.FetchAll(ctx, opts...)
		})
	case "ceremonies":
		return listNamed(func() ([]valorant.Ceremony, error) {
			return client.Ceremonies.FetchAll(ctx, opts...)
		})
	case "competitivetiers":
		return listCompetitiveTiers(ctx, opts)
	case "contenttiers":
		return listNamed(func() ([]valorant.ContentTier, error) {
			return client.ContentTiers.FetchAll(ctx, opts...)
		})
	case "contracts":
		return listNamed(func() ([]valorant.Contract, error) {
			return client.Contracts.FetchAll(ctx, opts...)
		})
	case "currencies":
		return listNamed(func() ([]valorant.Currency, error) {
			return client.Currencies.FetchAll(ctx, opts...)
		})
	case "events":
		return listNamed(func() ([]valorant.Event, error) {
			return client.Events.FetchAll(ctx, opts...)
		})
	case "gamemodes":
		return listNamed(func() ([]valorant.Gamemode, error) {
			return client.Gamemodes.FetchAll(ctx, opts...)
		})
	case "equippables":
		return listNamed(func() ([]valorant.GamemodeEquippable, error) {
			return client.Gamemodes.FetchAllEquippables(ctx, opts...)
		})
	default:
		return fmt.Errorf("unknown resource %q (supported: %s)", args[0], listResources)
	}
}

// entry is anything with a UUID and a display name
type entry interface {
	fmt.Stringer
}

// listNamed fetches a resource list and prints one line per entry
func listNamed[T entry](fetch func() ([]T, error)) error {
	entries, err := fetch()
	if err != nil {
		return err
	}
	printEntries(entries)
	return nil
}

func printEntries[T entry](entries []T) {
	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return
	}

	fmt.Printf("\nFound %d entries:\n", len(entries))
	fmt.Println(strings.Repeat("-", 80))
	for _, e := range entries {
		name := e.String()
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("• %s\n", name)
	}
}

func listAgents(ctx context.Context, opts []valorant.FetchOption) error {
	if playableOnly {
		opts = append(opts, valorant.WithPlayableCharactersOnly())
	}

	agents, err := client.Agents.FetchAll(ctx, opts...)
	if err != nil {
		return err
	}

	if filterExpr != "" {
		logger.Debug().Str("filter", filterExpr).Msg("Applying agent filter")
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		agents, err = filter.MatchAgents(f, agents)
		if err != nil {
			return err
		}
	}

	if len(agents) == 0 {
		fmt.Println("No agents found matching the criteria.")
		return nil
	}

	fmt.Printf("\nFound %d agents:\n", len(agents))
	fmt.Println(strings.Repeat("-", 80))
	for _, agent := range agents {
		fmt.Printf("• %s", agent.DisplayName)
		if agent.Role != nil {
			fmt.Printf(" [%s]", agent.Role.DisplayName)
		}
		fmt.Println()
		fmt.Printf("  UUID: %s\n", agent.UUID)
	}
	return nil
}

func listCompetitiveTiers(ctx context.Context, opts []valorant.FetchOption) error {
	if noUnused {
		opts = append(opts, valorant.WithoutUnusedTiers())
	}

	episodes, err := client.CompetitiveTiers.FetchAll(ctx, opts...)
	if err != nil {
		return err
	}

	if len(episodes) == 0 {
		fmt.Println("No tier tables found.")
		return nil
	}

	for _, episode := range episodes {
		fmt.Printf("\n%s (%s)\n", episode.AssetObjectName, episode.UUID)
		fmt.Println(strings.Repeat("-", 80))
		for _, tier := range episode.Tiers {
			fmt.Printf("  %3d  %s\n", tier.Tier, tier.TierName)
		}
	}
	return nil
}
