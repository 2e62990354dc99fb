package database

import (
	"context"
	stdsql "database/sql"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/skein-dev/skein/ent"
	_ "modernc.org/sqlite"
)

// OpenTest opens an in-memory sqlite database with the full schema applied
// via Ent's runtime migration. The client is closed when the test ends.
func OpenTest(t *testing.T) *ent.Client {
	t.Helper()

	// Unique name per test so parallel tests don't share state.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	db, err := stdsql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// A shared-cache in-memory database vanishes when its last connection
	// closes; pin one open for the test's lifetime.
	db.SetMaxIdleConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}
