package extract

import (
	"testing"

	"github.com/leapstack-labs/sqlrefs/pkg/scan"
)

// Best-effort reduction of projection items that are not simple
// identifiers: the trailing identifier wins, full expression parsing is
// out of scope.
func TestColumnRefs_BestEffortItems(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want []string
	}{
		{
			name: "function call reduces to its name",
			sql:  "SELECT COUNT(*) AS total FROM t",
			want: []string{"COUNT"},
		},
		{
			name: "arithmetic reduces to trailing operand",
			sql:  "SELECT a + b FROM t",
			want: []string{"b"},
		},
		{
			name: "nested identifier used when item has none at top level",
			sql:  "SELECT (price) FROM t",
			want: []string{"price"},
		},
		{
			name: "pure literals yield nothing",
			sql:  "SELECT 1, 'x' FROM t",
			want: nil,
		},
		{
			name: "case expression with embedded commas stays one item",
			sql:  "SELECT CASE WHEN a THEN f(x, y) ELSE z END AS v, w FROM t",
			want: []string{"z", "w"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols := columnRefs(scan.Tokenize(scan.Normalize(tt.sql)))

			if len(cols) != len(tt.want) {
				t.Fatalf("expected columns %v, got %v", tt.want, cols)
			}
			for _, want := range tt.want {
				if _, ok := cols[want]; !ok {
					t.Errorf("missing column %q in %v", want, cols)
				}
			}
		})
	}
}

func TestColumnRefs_InsertListOnly(t *testing.T) {
	// A paren group after VALUES or elsewhere is not a column list.
	cols := columnRefs(scan.Tokenize("INSERT INTO t VALUES (a, b)"))
	if len(cols) != 0 {
		t.Errorf("expected no columns, got %v", cols)
	}

	cols = columnRefs(scan.Tokenize("INSERT INTO t (x, y) VALUES (1, 2)"))
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, got %v", cols)
	}
	for _, want := range []string{"x", "y"} {
		if _, ok := cols[want]; !ok {
			t.Errorf("missing column %q", want)
		}
	}
}

func TestColumnRefs_UnterminatedInsertList(t *testing.T) {
	// The open list still contributes what it names.
	for _, sql := range []string{
		"INSERT INTO t (",
		"INSERT INTO t (x, y",
	} {
		cols := columnRefs(scan.Tokenize(sql))
		for col := range cols {
			if col != "x" && col != "y" {
				t.Errorf("%q: unexpected column %q", sql, col)
			}
		}
	}
}
