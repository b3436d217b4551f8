package extract

import "github.com/leapstack-labs/sqlrefs/pkg/token"

// cteDefs scans a leading WITH clause and returns the CTE names it
// defines plus the index of the first token of the main statement.
// Each definition has the form `name [(col_list)] AS ( body )` and
// definitions are comma-separated. Bodies are skipped as opaque
// balanced-paren regions; their internal references are not extracted.
//
// If the input does not start with WITH, or a definition turns out to
// be malformed, scanning stops and whatever was collected so far is
// returned. The end index then points at the first token the table and
// column extractors should consider.
func cteDefs(toks []token.Token) (names []string, end int) {
	if len(toks) == 0 || toks[0].Type != token.WITH {
		return nil, 0
	}
	i := 1
	if i < len(toks) && toks[i].Type == token.RECURSIVE {
		i++
	}

	for {
		if i >= len(toks) || toks[i].Type != token.IDENT {
			return names, i
		}
		name := toks[i].Literal
		i++

		// Optional CTE column list: name (a, b, ...)
		if i < len(toks) && toks[i].Type == token.LPAREN {
			i = skipBalanced(toks, i)
		}

		if i >= len(toks) || toks[i].Type != token.AS {
			return names, i
		}
		i++

		if i >= len(toks) || toks[i].Type != token.LPAREN {
			return names, i
		}
		i = skipBalanced(toks, i)

		names = append(names, name)

		if i < len(toks) && toks[i].Type == token.COMMA {
			i++
			continue
		}
		return names, i
	}
}
