package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	v1 "github.com/KirkDiggler/rpg-gm-api/internal/handlers/http/v1"
)

var (
	promoteDraft bool
	clearDraft   bool
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Show, promote or clear your encounter draft",
	Long: `Without flags the draft is shown, and created empty if you have none.
--promote saves it as a prepared encounter and --clear discards it.`,
	RunE: runDraft,
}

func init() {
	draftCmd.Flags().BoolVar(&promoteDraft, "promote", false, "Save the draft as an encounter")
	draftCmd.Flags().BoolVar(&clearDraft, "clear", false, "Discard the draft")
	draftCmd.MarkFlagsMutuallyExclusive("promote", "clear")
}

func runDraft(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c := newRESTClient()

	switch {
	case clearDraft:
		if err := c.do(ctx, "DELETE", "/encounters/draft", nil, nil); err != nil {
			return fmt.Errorf("failed to clear draft: %w", err)
		}
		fmt.Println("Draft cleared")
		return nil
	case promoteDraft:
		var resp v1.EncounterResponse
		if err := c.do(ctx, "POST", "/encounters/draft/promote", nil, &resp); err != nil {
			return fmt.Errorf("failed to promote draft: %w", err)
		}
		fmt.Printf("Draft saved as encounter %s\n", resp.Encounter.ID)
		return printJSON(resp.Encounter)
	default:
		var resp v1.DraftResponse
		if err := c.do(ctx, "GET", "/encounters/draft", nil, &resp); err != nil {
			return fmt.Errorf("failed to get draft: %w", err)
		}
		if resp.Created {
			fmt.Println("No draft found, started a new one")
		}
		return printJSON(resp.Draft)
	}
}
