package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-gm-api/internal/config"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/repositories/library"
)

var importFile string

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the creature, hazard and item library",
}

var libraryImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Load creatures, hazards and items from a JSON file",
	Long: `Import reads {"creatures": [...], "hazards": [...], "items": [...]} and
inserts or replaces every record by id. The treasure table ships with the
library migrations.`,
	RunE: runLibraryImport,
}

func init() {
	libraryImportCmd.Flags().StringVar(&importFile, "file", "", "JSON file to import (required)")
	_ = libraryImportCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init

	libraryCmd.AddCommand(libraryImportCmd)
}

type libraryImport struct {
	Creatures []library.Creature `json:"creatures"`
	Hazards   []library.Hazard   `json:"hazards"`
	Items     []library.Item     `json:"items"`
}

func runLibraryImport(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	data, err := os.ReadFile(importFile)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", importFile)
	}

	var in libraryImport
	if err := json.Unmarshal(data, &in); err != nil {
		return errors.InvalidArgumentf("invalid library file %s: %v", importFile, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := library.Open(ctx, cfg.Library.Path)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close() // nolint:errcheck // writes are committed per upsert
	}()

	if err := store.UpsertCreatures(ctx, in.Creatures); err != nil {
		return err
	}
	if err := store.UpsertHazards(ctx, in.Hazards); err != nil {
		return err
	}
	if err := store.UpsertItems(ctx, in.Items); err != nil {
		return err
	}

	fmt.Printf("Imported %d creatures, %d hazards and %d items into %s\n",
		len(in.Creatures), len(in.Hazards), len(in.Items), cfg.Library.Path)
	return nil
}
