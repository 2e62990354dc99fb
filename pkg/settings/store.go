// Package settings provides the DB-backed key-value registry for runtime
// tunables: pipeline limits, pricing and cache-multiplier overrides, per-agent
// overrides, cost limits, and git identity.
package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/skein-dev/skein/ent"
	"github.com/skein-dev/skein/ent/appsetting"
)

// Store reads and writes app settings with lazy read-through. Every typed
// getter tolerates absent keys and unparsable values by returning the given
// default; reads never panic.
type Store struct {
	client *ent.Client
}

// New creates a settings store backed by the given Ent client.
func New(client *ent.Client) *Store {
	return &Store{client: client}
}

// Get returns the raw string value for key, and whether it exists.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	row, err := s.client.AppSetting.Query().
		Where(appsetting.IDEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read setting %q: %w", key, err)
	}
	return row.Value, true, nil
}

// Set upserts a setting.
func (s *Store) Set(ctx context.Context, key, value string) error {
	n, err := s.client.AppSetting.Update().
		Where(appsetting.IDEQ(key)).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update setting %q: %w", key, err)
	}
	if n > 0 {
		return nil
	}
	err = s.client.AppSetting.Create().
		SetID(key).
		SetValue(value).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost a create race; the update path wins now.
			_, err = s.client.AppSetting.Update().
				Where(appsetting.IDEQ(key)).
				SetValue(value).
				Save(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to create setting %q: %w", key, err)
		}
	}
	return nil
}

// Delete removes a setting. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.AppSetting.Delete().
		Where(appsetting.IDEQ(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete setting %q: %w", key, err)
	}
	return nil
}

// List returns all settings with the given key prefix.
func (s *Store) List(ctx context.Context, prefix string) (map[string]string, error) {
	// Ent generates no HasPrefix predicate for string IDs.
	rows, err := s.client.AppSetting.Query().
		Where(func(sel *entsql.Selector) {
			sel.Where(entsql.HasPrefix(sel.C(appsetting.FieldID), prefix))
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings with prefix %q: %w", prefix, err)
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.ID] = row.Value
	}
	return out, nil
}

// Int reads an integer setting, falling back to def on absence or parse failure.
func (s *Store) Int(ctx context.Context, key string, def int) int {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		slog.Warn("Setting read failed, using default", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// Float reads a float setting, falling back to def on absence or parse failure.
func (s *Store) Float(ctx context.Context, key string, def float64) float64 {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		slog.Warn("Setting read failed, using default", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

// Bool reads a boolean setting, falling back to def on absence or parse failure.
func (s *Store) Bool(ctx context.Context, key string, def bool) bool {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		slog.Warn("Setting read failed, using default", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// String reads a string setting, falling back to def when absent.
func (s *Store) String(ctx context.Context, key string, def string) string {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		slog.Warn("Setting read failed, using default", "key", key, "error", err)
		return def
	}
	if !ok {
		return def
	}
	return raw
}
