package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// Introspect builds a catalog from a live database connection. The
// driver name selects the introspection strategy: "sqlite" walks
// sqlite_master and PRAGMA table_info, "postgres" (or "pgx") reads
// information_schema.columns.
func Introspect(ctx context.Context, db *sql.DB, driver string) (*Catalog, error) {
	switch driver {
	case "sqlite", "sqlite3":
		return introspectSQLite(ctx, db)
	case "postgres", "pgx":
		return introspectPostgres(ctx, db)
	default:
		return nil, fmt.Errorf("unsupported driver %q (want sqlite or postgres)", driver)
	}
}

func introspectSQLite(ctx context.Context, db *sql.DB) (*Catalog, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type IN ('table', 'view') AND name NOT LIKE 'sqlite_%'`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	c := New()
	for _, name := range names {
		cols, err := sqliteColumns(ctx, db, name)
		if err != nil {
			return nil, err
		}
		c.AddTable(name, cols...)
	}
	return c, nil
}

func sqliteColumns(ctx context.Context, db *sql.DB, table string) ([]string, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var (
			cid, notNull, pk int
			name, typ        string
			dflt             sql.NullString
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column of %s: %w", table, err)
		}
		cols = append(cols, name)
	}
	return cols, rows.Err()
}

func introspectPostgres(ctx context.Context, db *sql.DB) (*Catalog, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT table_name, column_name
		   FROM information_schema.columns
		  WHERE table_schema NOT IN ('pg_catalog', 'information_schema')
		  ORDER BY table_name, ordinal_position`)
	if err != nil {
		return nil, fmt.Errorf("failed to read information_schema: %w", err)
	}
	defer rows.Close()

	c := New()
	for rows.Next() {
		var table, column string
		if err := rows.Scan(&table, &column); err != nil {
			return nil, fmt.Errorf("failed to scan column row: %w", err)
		}
		c.AddTable(table, column)
	}
	return c, rows.Err()
}
