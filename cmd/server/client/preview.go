package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	v1 "github.com/KirkDiggler/rpg-gm-api/internal/handlers/http/v1"
)

var rosterFile string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Rate a combat roster without saving it",
	Long: `Preview posts a roster file to the calculator. The file holds
{"enemies": [{"id": "...", "level_adjustment": 0}], "hazards": [...],
"party_level": 1, "party_size": 4}.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&rosterFile, "file", "", "Roster JSON file (required)")
	_ = previewCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init
}

func runPreview(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(rosterFile)
	if err != nil {
		return fmt.Errorf("failed to read roster: %w", err)
	}

	var req v1.CalculateXPRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("invalid roster file: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var resp v1.CalculateXPResponse
	if err := newRESTClient().do(ctx, "POST", "/calculator/xp", req, &resp); err != nil {
		return fmt.Errorf("failed to rate roster: %w", err)
	}

	if !resp.Computable {
		fmt.Println("Nothing to rate: the roster is empty or the party is incomplete.")
		return nil
	}
	fmt.Printf("Raw XP:     %d\n", resp.Raw)
	fmt.Printf("Party XP:   %d\n", resp.Total)
	fmt.Printf("Difficulty: %s\n", resp.DifficultyName)
	for _, ref := range resp.UnresolvedReferences {
		fmt.Printf("Not in library: %s\n", ref)
	}
	return nil
}
