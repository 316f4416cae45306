package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-gm-api/internal/config"
	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
	"github.com/KirkDiggler/rpg-gm-api/internal/entities"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/orchestrators/calculator"
)

var (
	calcPartyLevel int
	calcPartySize  int
	calcEnemies    []string
	calcHazards    []string
	calcItems      []string
	calcGold       float64
	calcTotalXP    int
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Offline encounter and treasure calculator",
	Long:  `Run the XP, difficulty and treasure calculations against the local library without a server.`,
}

var calcXPCmd = &cobra.Command{
	Use:   "xp",
	Short: "Compute the XP award and difficulty of a roster",
	Example: `  gm-api calc xp --party-level 3 --party-size 5 \
    --enemy ogre --enemy goblin-warrior:-1 --hazard collapsing-roof`,
	RunE: runCalcXP,
}

var calcSeverityCmd = &cobra.Command{
	Use:   "severity",
	Short: "Print the XP range of each difficulty for a party size",
	RunE:  runCalcSeverity,
}

var calcTreasureCmd = &cobra.Command{
	Use:   "treasure",
	Short: "Value a treasure bundle in gold",
	RunE:  runCalcTreasure,
}

var calcExpectedCmd = &cobra.Command{
	Use:   "expected",
	Short: "Interpolate the expected treasure for a campaign XP total",
	RunE:  runCalcExpected,
}

func init() {
	calcXPCmd.Flags().IntVar(&calcPartyLevel, "party-level", 1, "Party level")
	calcXPCmd.Flags().IntVar(&calcPartySize, "party-size", engine.ReferencePartySize, "Number of characters")
	calcXPCmd.Flags().StringArrayVar(&calcEnemies, "enemy", nil, "Creature id, optionally id:adjustment (repeatable)")
	calcXPCmd.Flags().StringArrayVar(&calcHazards, "hazard", nil, "Hazard id (repeatable)")

	calcSeverityCmd.Flags().IntVar(&calcPartySize, "party-size", engine.ReferencePartySize, "Number of characters")

	calcTreasureCmd.Flags().StringArrayVar(&calcItems, "item", nil, "Item id (repeatable)")
	calcTreasureCmd.Flags().Float64Var(&calcGold, "gold", 0, "Currency in gold")

	calcExpectedCmd.Flags().IntVar(&calcTotalXP, "total-xp", 0, "Campaign XP total")
	calcExpectedCmd.Flags().IntVar(&calcPartySize, "party-size", engine.ReferencePartySize, "Number of characters")

	calcCmd.AddCommand(calcXPCmd, calcSeverityCmd, calcTreasureCmd, calcExpectedCmd)
}

// withCalculator opens the configured library for the duration of fn.
func withCalculator(cmd *cobra.Command, fn func(ctx context.Context, calc calculator.Service) error) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, calc, err := openCalculator(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close() // nolint:errcheck // read-only use
	}()

	return fn(ctx, calc)
}

// parseEnemy accepts "id" or "id:adjustment", e.g. "orc-brute:+1".
func parseEnemy(s string) (entities.EncounterEnemy, error) {
	id, adj, found := strings.Cut(s, ":")
	if id == "" {
		return entities.EncounterEnemy{}, errors.InvalidArgumentf("invalid enemy %q", s)
	}
	enemy := entities.EncounterEnemy{ID: id}
	if found {
		n, err := strconv.Atoi(adj)
		if err != nil {
			return entities.EncounterEnemy{}, errors.InvalidArgumentf("invalid level adjustment in %q", s)
		}
		enemy.LevelAdjustment = n
	}
	return enemy, nil
}

func runCalcXP(cmd *cobra.Command, _ []string) error {
	enemies := make([]entities.EncounterEnemy, 0, len(calcEnemies))
	for _, raw := range calcEnemies {
		enemy, err := parseEnemy(raw)
		if err != nil {
			return err
		}
		enemies = append(enemies, enemy)
	}

	return withCalculator(cmd, func(ctx context.Context, calc calculator.Service) error {
		out, err := calc.CalculateXP(ctx, &calculator.CalculateXPInput{
			Enemies:    enemies,
			Hazards:    calcHazards,
			PartyLevel: calcPartyLevel,
			PartySize:  calcPartySize,
		})
		if err != nil {
			return err
		}

		r := out.Result
		if !r.Computable {
			fmt.Println("Nothing to rate: the roster is empty or the party is incomplete.")
			return nil
		}
		fmt.Printf("Raw XP:     %d\n", r.Raw)
		fmt.Printf("Party XP:   %d (party of %d)\n", r.Total, calcPartySize)
		fmt.Printf("Difficulty: %s\n", r.Difficulty)
		printUnresolved(out.Unresolved)
		return nil
	})
}

func runCalcSeverity(_ *cobra.Command, _ []string) error {
	if calcPartySize < 1 {
		return errors.InvalidArgumentf("party size must be at least 1, got %d", calcPartySize)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "DIFFICULTY\tFROM\tTO\n")
	for _, r := range engine.SeverityBoundaries(calcPartySize) {
		end := "-"
		if !r.IsUnbounded() {
			end = strconv.Itoa(r.End - 1)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", r.Difficulty, r.Start, end)
	}
	return w.Flush()
}

func runCalcTreasure(cmd *cobra.Command, _ []string) error {
	return withCalculator(cmd, func(ctx context.Context, calc calculator.Service) error {
		out, err := calc.CalculateTreasure(ctx, &calculator.CalculateTreasureInput{
			Items:    calcItems,
			Currency: entities.CurrencyFromGold(calcGold),
		})
		if err != nil {
			return err
		}

		fmt.Printf("Items:    %.2f gp\n", out.ItemsValue)
		fmt.Printf("Currency: %.2f gp\n", out.CurrencyValue)
		fmt.Printf("Total:    %.2f gp\n", out.Total)
		printUnresolved(out.Unresolved)
		return nil
	})
}

func runCalcExpected(cmd *cobra.Command, _ []string) error {
	return withCalculator(cmd, func(ctx context.Context, calc calculator.Service) error {
		out, err := calc.ExpectedTreasure(ctx, &calculator.ExpectedTreasureInput{
			TotalExperience: calcTotalXP,
			PartySize:       calcPartySize,
		})
		if err != nil {
			return err
		}

		p := out.Progress
		fmt.Printf("Level %d, %d XP into the level\n", p.Level, p.ExperienceThisLevel)
		fmt.Printf("Expected at start of level: %.0f gp\n", p.ExpectedStart)
		fmt.Printf("Expected at end of level:   %.0f gp\n", p.ExpectedEnd)
		fmt.Printf("Expected now:               %.0f gp\n", p.Expected)
		return nil
	})
}

func printUnresolved(refs []string) {
	if len(refs) == 0 {
		return
	}
	fmt.Printf("Not in library (counted as 0): %s\n", strings.Join(refs, ", "))
}
