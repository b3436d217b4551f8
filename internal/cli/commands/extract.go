package commands

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leapstack-labs/sqlrefs/pkg/extract"
	"github.com/leapstack-labs/sqlrefs/pkg/scan"
)

// extraction is one query's rendered result.
type extraction struct {
	Query      string   `json:"query"`
	Normalized string   `json:"normalized"`
	Tables     []string `json:"tables"`
	Columns    []string `json:"columns"`
}

// ExtractOptions holds options for the extract command.
type ExtractOptions struct {
	Format string
}

// NewExtractCommand creates the extract command.
func NewExtractCommand() *cobra.Command {
	opts := &ExtractOptions{}

	cmd := &cobra.Command{
		Use:   "extract [SQL ...]",
		Short: "Extract table and column references from SQL",
		Long: `Extract the table and column names referenced by one or more SQL
statements without parsing or validating them.

Statements are taken from the argument list, or read line by line from
standard input when no arguments are given. Extraction is best-effort
and total: malformed or non-SQL input yields partial or empty sets, and
the command always exits 0.`,
		Example: `  # Single statement
  sqlrefs extract "SELECT * FROM users"

  # Several statements, JSON output
  sqlrefs extract -f json "SELECT a FROM t1" "UPDATE t2 SET b = 1"

  # Line-delimited statements from stdin
  cat queries.sql | sqlrefs extract`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format (auto|table|plain|json|csv)")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string, opts *ExtractOptions) error {
	cfg := ConfigFrom(cmd)
	log := LoggerFrom(cmd)

	queries := args
	if len(queries) == 0 {
		var err error
		queries, err = readQueryLines(cmd.InOrStdin(), cfg.MaxLength, log)
		if err != nil {
			return err
		}
	}

	records := make([]extraction, 0, len(queries))
	for _, q := range queries {
		q = clamp(q, cfg.MaxLength, log)
		res := extract.Extract(q)
		records = append(records, extraction{
			Query:      q,
			Normalized: scan.Normalize(q),
			Tables:     res.TableList(),
			Columns:    res.ColumnList(),
		})
	}
	log.Debug("extraction complete", "queries", len(records))

	return renderExtractions(cmd.OutOrStdout(), records, resolveFormat(opts.Format, cfg.Output))
}

// readQueryLines reads line-delimited statements, skipping blank lines.
// A line longer than the advisory max is kept up to the bound and the
// rest discarded with a warning, so one oversized line degrades to a
// partial extraction instead of failing the whole run.
func readQueryLines(r io.Reader, maxLen int, log *slog.Logger) ([]string, error) {
	br := bufio.NewReader(r)

	var queries []string
	for {
		line, err := readBoundedLine(br, maxLen, log)
		if q := strings.TrimSpace(line); q != "" {
			queries = append(queries, q)
		}
		if err == io.EOF {
			return queries, nil
		}
		if err != nil {
			return queries, err
		}
	}
}

// readBoundedLine reads one line, keeping at most maxLen bytes of it
// (zero means unbounded). The error is io.EOF once input is exhausted.
func readBoundedLine(br *bufio.Reader, maxLen int, log *slog.Logger) (string, error) {
	var line strings.Builder
	dropped := 0
	for {
		chunk, isPrefix, err := br.ReadLine()
		keep := chunk
		if maxLen > 0 && line.Len()+len(keep) > maxLen {
			keep = keep[:maxLen-line.Len()]
		}
		line.Write(keep)
		dropped += len(chunk) - len(keep)

		if err != nil || !isPrefix {
			if dropped > 0 {
				log.Warn("input line exceeds advisory max length, truncating",
					"dropped_bytes", dropped, "max_length", maxLen)
			}
			return line.String(), err
		}
	}
}

// resolveFormat picks the effective output format: flag over config,
// "auto" resolving to a table on a terminal and plain text otherwise.
func resolveFormat(flagFormat, cfgFormat string) string {
	format := flagFormat
	if format == "" {
		format = cfgFormat
	}
	if format == "" || format == "auto" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return "table"
		}
		return "plain"
	}
	return format
}
