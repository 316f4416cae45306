package library

import (
	"context"
	"database/sql"
	"math"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/rpg-gm-api/internal/engine"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
	"github.com/KirkDiggler/rpg-gm-api/internal/repositories/library/migrations"
)

// MemoryPath opens a private in-memory library.
const MemoryPath = ":memory:"

// Store is the SQLite-backed library.
type Store struct {
	db *sql.DB
}

var _ Lookup = (*Store)(nil)

// Open opens the library at path and applies pending migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("library path is required")
	}

	dsn := MemoryPath
	if path != MemoryPath {
		dsn = filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open library")
	}
	if path == MemoryPath {
		// every connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping library")
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to migrate library")
	}

	return &Store{db: db}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreatureLevels implements Lookup.
func (s *Store) CreatureLevels(ctx context.Context, ids []string) (map[string]int, error) {
	out := make(map[string]int, len(ids))
	err := s.queryIDs(ctx, `SELECT id, level FROM creatures WHERE id IN (%s)`, ids, func(rows *sql.Rows) error {
		var id string
		var level int
		if err := rows.Scan(&id, &level); err != nil {
			return err
		}
		out[id] = level
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up creature levels")
	}
	return out, nil
}

// Hazards implements Lookup.
func (s *Store) Hazards(ctx context.Context, ids []string) (map[string]HazardInfo, error) {
	out := make(map[string]HazardInfo, len(ids))
	err := s.queryIDs(ctx, `SELECT id, level, complex FROM hazards WHERE id IN (%s)`, ids, func(rows *sql.Rows) error {
		var id string
		var info HazardInfo
		if err := rows.Scan(&id, &info.Level, &info.Complex); err != nil {
			return err
		}
		out[id] = info
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up hazards")
	}
	return out, nil
}

// ItemPrices implements Lookup.
func (s *Store) ItemPrices(ctx context.Context, ids []string) (map[string]float64, error) {
	out := make(map[string]float64, len(ids))
	err := s.queryIDs(ctx, `SELECT id, price_copper FROM items WHERE id IN (%s) AND price_copper IS NOT NULL`, ids, func(rows *sql.Rows) error {
		var id string
		var copper int64
		if err := rows.Scan(&id, &copper); err != nil {
			return err
		}
		out[id] = float64(copper) / 100
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up item prices")
	}
	return out, nil
}

// TreasureCurve implements Lookup.
func (s *Store) TreasureCurve(ctx context.Context) (engine.ReferenceCurve, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT level, total_value, currency_per_additional_player FROM treasure_by_level ORDER BY level`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load treasure table")
	}
	defer func() { _ = rows.Close() }()

	var curve engine.ReferenceCurve
	for rows.Next() {
		var row engine.TreasureLevel
		if err := rows.Scan(&row.Level, &row.TotalValue, &row.CurrencyPerAdditionalPlayer); err != nil {
			return nil, errors.Wrap(err, "failed to read treasure table")
		}
		curve = append(curve, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read treasure table")
	}
	return curve, nil
}

// UpsertCreatures inserts or replaces creatures in one transaction.
func (s *Store) UpsertCreatures(ctx context.Context, creatures []Creature) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, c := range creatures {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO creatures (id, name, level) VALUES (?, ?, ?)
				 ON CONFLICT(id) DO UPDATE SET name = excluded.name, level = excluded.level`,
				c.ID, c.Name, c.Level,
			); err != nil {
				return errors.Wrapf(err, "failed to upsert creature %s", c.ID)
			}
		}
		return nil
	})
}

// UpsertHazards inserts or replaces hazards in one transaction.
func (s *Store) UpsertHazards(ctx context.Context, hazards []Hazard) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, h := range hazards {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO hazards (id, name, level, complex) VALUES (?, ?, ?, ?)
				 ON CONFLICT(id) DO UPDATE SET name = excluded.name, level = excluded.level, complex = excluded.complex`,
				h.ID, h.Name, h.Level, h.Complex,
			); err != nil {
				return errors.Wrapf(err, "failed to upsert hazard %s", h.ID)
			}
		}
		return nil
	})
}

// UpsertItems inserts or replaces items in one transaction.
func (s *Store) UpsertItems(ctx context.Context, items []Item) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, it := range items {
			var copper sql.NullInt64
			if it.Price != nil {
				copper = sql.NullInt64{Int64: int64(math.Round(*it.Price * 100)), Valid: true}
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO items (id, name, level, price_copper, consumable) VALUES (?, ?, ?, ?, ?)
				 ON CONFLICT(id) DO UPDATE SET name = excluded.name, level = excluded.level,
				 price_copper = excluded.price_copper, consumable = excluded.consumable`,
				it.ID, it.Name, it.Level, copper, it.Consumable,
			); err != nil {
				return errors.Wrapf(err, "failed to upsert item %s", it.ID)
			}
		}
		return nil
	})
}

func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin library transaction")
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit library transaction")
	}
	return nil
}

// queryIDs runs query with one placeholder per distinct id and hands each
// row to scan. query must contain a single %s for the placeholder list.
func (s *Store) queryIDs(ctx context.Context, query string, ids []string, scan func(*sql.Rows) error) error {
	unique := dedupe(ids)
	if len(unique) == 0 {
		return nil
	}

	args := make([]any, len(unique))
	for i, id := range unique {
		args[i] = id
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(unique)), ",")

	rows, err := s.db.QueryContext(ctx, strings.Replace(query, "%s", placeholders, 1), args...)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
