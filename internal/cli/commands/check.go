package commands

import (
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/sqlrefs/internal/catalog"
	"github.com/leapstack-labs/sqlrefs/pkg/extract"
	"github.com/leapstack-labs/sqlrefs/pkg/scan"

	// Database drivers for catalog introspection.
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// finding is one query's verification outcome.
type finding struct {
	Query          string   `json:"query"`
	Tables         []string `json:"tables"`
	Columns        []string `json:"columns"`
	UnknownTables  []string `json:"unknown_tables,omitempty"`
	UnknownColumns []string `json:"unknown_columns,omitempty"`
	OK             bool     `json:"ok"`
}

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Format string
	Schema string
	Driver string
	DSN    string
	Jobs   int
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check [SQL ...]",
		Short: "Check SQL references against a schema catalog",
		Long: `Extract table and column references from SQL statements and verify
each one against a schema catalog, reporting references that do not
exist. This catches queries that name made-up tables or columns, the
typical failure mode of machine-generated SQL.

The catalog comes from a YAML schema file (--schema) or from a live
database (--driver with --dsn). Statements are taken from the argument
list, or read line by line from standard input when no arguments are
given.

Malformed SQL never fails the command; the exit status is nonzero only
when unknown references were found.`,
		Example: `  # Verify against a schema file
  sqlrefs check --schema schema.yaml "SELECT nome FROM userz"

  # Verify against a SQLite database
  sqlrefs check --driver sqlite --dsn app.db "SELECT id FROM users"

  # Verify against Postgres, JSON report
  sqlrefs check --driver postgres --dsn "$DATABASE_URL" -f json < queries.sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format (auto|table|plain|json|csv)")
	cmd.Flags().StringVar(&opts.Schema, "schema", "", "Path to YAML schema file")
	cmd.Flags().StringVar(&opts.Driver, "driver", "", "Database driver (sqlite|postgres)")
	cmd.Flags().StringVar(&opts.DSN, "dsn", "", "Database connection string")
	cmd.Flags().IntVar(&opts.Jobs, "jobs", 0, "Max concurrent checks")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	cfg := ConfigFrom(cmd)
	log := LoggerFrom(cmd)

	cat, err := loadCatalog(cmd, opts)
	if err != nil {
		return err
	}
	log.Debug("catalog loaded", "tables", cat.Len())

	queries := args
	if len(queries) == 0 {
		queries, err = readQueryLines(cmd.InOrStdin(), cfg.MaxLength, log)
		if err != nil {
			return err
		}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = cfg.Jobs
	}

	// Extraction is pure, so queries verify independently.
	findings := make([]finding, len(queries))
	g := new(errgroup.Group)
	g.SetLimit(jobs)
	for i, q := range queries {
		g.Go(func() error {
			q := clamp(q, cfg.MaxLength, log)
			res := extract.Extract(q)
			report := cat.Verify(res)
			findings[i] = finding{
				Query:          scan.Normalize(q),
				Tables:         res.TableList(),
				Columns:        res.ColumnList(),
				UnknownTables:  report.UnknownTables,
				UnknownColumns: report.UnknownColumns,
				OK:             report.Clean(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := renderFindings(cmd.OutOrStdout(), findings, resolveFormat(opts.Format, cfg.Output)); err != nil {
		return err
	}

	unknown := 0
	for _, f := range findings {
		unknown += len(f.UnknownTables) + len(f.UnknownColumns)
	}
	if unknown > 0 {
		return fmt.Errorf("%d unknown reference(s) found", unknown)
	}
	return nil
}

// loadCatalog builds the catalog from the schema file or live database,
// preferring explicit flags over configured values.
func loadCatalog(cmd *cobra.Command, opts *CheckOptions) (*catalog.Catalog, error) {
	cfg := ConfigFrom(cmd)

	schema := opts.Schema
	if schema == "" {
		schema = cfg.SchemaFile
	}
	if schema != "" {
		return catalog.LoadFile(schema)
	}

	driver := opts.Driver
	if driver == "" {
		driver = cfg.Driver
	}
	dsn := opts.DSN
	if dsn == "" {
		dsn = cfg.DSN
	}
	if driver == "" || dsn == "" {
		return nil, fmt.Errorf("no schema source: provide --schema, or --driver with --dsn")
	}

	driverName := driver
	if driver == "postgres" {
		driverName = "pgx"
	}
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return catalog.Introspect(ctx, db, driver)
}

func renderFindings(w io.Writer, findings []finding, format string) error {
	switch format {
	case "json":
		return renderJSON(w, findings)
	case "csv":
		return renderFindingsCSV(w, findings)
	case "plain":
		return renderFindingsPlain(w, findings)
	default:
		return renderFindingsTable(w, findings)
	}
}

func renderFindingsTable(w io.Writer, findings []finding) error {
	if len(findings) == 0 {
		_, _ = fmt.Fprintln(w, "(0 queries)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Query", "Status", "Unknown Tables", "Unknown Columns"})
	for _, f := range findings {
		t.AppendRow(table.Row{
			f.Query,
			statusLabel(f.OK),
			strings.Join(f.UnknownTables, ", "),
			strings.Join(f.UnknownColumns, ", "),
		})
	}
	t.Render()
	return nil
}

func renderFindingsPlain(w io.Writer, findings []finding) error {
	for i, f := range findings {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		_, _ = fmt.Fprintf(w, "query:  %s\n", f.Query)
		_, _ = fmt.Fprintf(w, "status: %s\n", statusLabel(f.OK))
		if len(f.UnknownTables) > 0 {
			_, _ = fmt.Fprintf(w, "unknown tables:  %s\n", strings.Join(f.UnknownTables, ", "))
		}
		if len(f.UnknownColumns) > 0 {
			_, _ = fmt.Fprintf(w, "unknown columns: %s\n", strings.Join(f.UnknownColumns, ", "))
		}
	}
	return nil
}

func renderFindingsCSV(w io.Writer, findings []finding) error {
	_, _ = fmt.Fprintln(w, "query,status,unknown_tables,unknown_columns")
	for _, f := range findings {
		_, _ = fmt.Fprintf(w, "%s,%s,%s,%s\n",
			escapeCSV(f.Query),
			statusLabel(f.OK),
			escapeCSV(strings.Join(f.UnknownTables, " ")),
			escapeCSV(strings.Join(f.UnknownColumns, " ")))
	}
	return nil
}

func statusLabel(ok bool) string {
	if ok {
		return "ok"
	}
	return "unknown refs"
}
