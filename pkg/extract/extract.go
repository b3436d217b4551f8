// Package extract implements best-effort lexical extraction of the table
// and column names referenced by a raw SQL statement.
//
// The extractor does not build a parse tree and does not validate SQL.
// It normalizes the input, tokenizes it once, and makes a single forward
// pass per concern (tables, columns, CTE names) tracking parenthesis
// depth so that commas and keywords inside nested expressions are not
// mistaken for top-level separators.
//
// Extract is a total function over arbitrary text: malformed, partial,
// or non-SQL input degrades to partial or empty results, never an error.
// Calls share no state and are safe for concurrent use.
package extract

import (
	"sort"

	"github.com/leapstack-labs/sqlrefs/pkg/scan"
	"github.com/leapstack-labs/sqlrefs/pkg/token"
)

// Result holds the table and column names referenced by one statement.
// Both sets contain bare identifiers only: schema qualifiers and aliases
// are stripped. Membership, not order, is the contract.
type Result struct {
	Tables  map[string]struct{}
	Columns map[string]struct{}
}

// TableList returns the table set as a sorted slice.
func (r Result) TableList() []string {
	return sortedKeys(r.Tables)
}

// ColumnList returns the column set as a sorted slice.
func (r Result) ColumnList() []string {
	return sortedKeys(r.Columns)
}

// Extract returns the table and column references in query.
//
// Tables come from FROM, JOIN, INTO, and UPDATE clauses plus any names
// defined by a leading WITH clause (later clauses treat a CTE exactly
// like a table). Columns come from the SELECT projection list, or from
// an explicit INSERT column list. The bodies of CTE definitions are
// treated as opaque text and are not recursed into.
func Extract(query string) Result {
	toks := scan.Tokenize(scan.Normalize(query))

	res := Result{
		Tables:  tableRefs(toks),
		Columns: columnRefs(toks),
	}

	names, _ := cteDefs(toks)
	for _, name := range names {
		res.Tables[name] = struct{}{}
	}

	return res
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// skipBalanced returns the index just past the parenthesized group that
// opens at i. If the group is unterminated, it returns len(toks).
func skipBalanced(toks []token.Token, i int) int {
	depth := 0
	for ; i < len(toks); i++ {
		switch toks[i].Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(toks)
}

// readQualifiedName reads ident(.ident)* starting at i and returns the
// trailing dot-segment with the index just past the name. An empty name
// means no identifier was found at i.
func readQualifiedName(toks []token.Token, i int) (string, int) {
	if i >= len(toks) || toks[i].Type != token.IDENT {
		return "", i
	}
	name := toks[i].Literal
	i++
	for i+1 < len(toks) && toks[i].Type == token.DOT && toks[i+1].Type == token.IDENT {
		name = toks[i+1].Literal
		i += 2
	}
	return name, i
}
