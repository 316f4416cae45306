package client

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
)

var campaignID string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a campaign's XP and treasure report",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&campaignID, "campaign", "", "Campaign ID (required)")
	_ = statsCmd.MarkFlagRequired("campaign") // nolint:errcheck // safe to ignore in init
}

func runStats(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var stats entities.CampaignStats
	if err := newRESTClient().do(ctx, "GET", "/campaigns/"+campaignID+"/stats", nil, &stats); err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	fmt.Printf("Campaign %s (party of %d)\n\n", stats.CampaignID, stats.PartySize)
	fmt.Printf("Level %d, %d XP into the level (%d total)\n", stats.Level, stats.ExperienceThisLevel, stats.TotalExperience)
	fmt.Printf("Sessions: %d  Combat: %d  Subsystems: %d  Accomplishments: %d\n",
		stats.NumSessions, stats.NumCombatEncounters, stats.NumSubsystemEncounters, stats.NumAccomplishments)
	fmt.Printf("\nTreasure found:    %.2f gp (items %.2f, currency %.2f)\n",
		stats.TotalCombinedTreasureValue, stats.TotalTreasureItemsValue, stats.TotalTreasureCurrencyValue)
	fmt.Printf("Treasure expected: %.0f gp (level spans %.0f to %.0f)\n",
		stats.ExpectedTreasure, stats.ExpectedTreasureStartOfLevel, stats.ExpectedTreasureEndOfLevel)
	if stats.NumUnresolvedReferences > 0 {
		fmt.Printf("Unresolved library references: %d\n", stats.NumUnresolvedReferences)
	}

	if len(stats.Encounters) == 0 {
		return nil
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ENCOUNTER\tKIND\tXP\tTOTAL XP\tITEMS\tCURRENCY\tEXPECTED\n")
	for _, row := range stats.Encounters {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.2f\t%.2f\t%.2f\n",
			row.EncounterID, row.Kind, row.TotalExperience, row.AccumulatedExperience,
			row.AccumulatedItemsValue, row.AccumulatedCurrency, row.CalculatedExpectedTreasure)
	}
	return w.Flush()
}
