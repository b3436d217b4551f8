package extract

import "github.com/leapstack-labs/sqlrefs/pkg/token"

// columnRefs extracts column names from the statement's projection list
// or, for INSERT, from its explicit column list.
//
// Projection path: the span strictly between the first statement-level
// SELECT and the next FROM at the same depth (or end of input). A span
// that is exactly `*` yields {"*"}. Otherwise the span is split on
// same-depth commas and each item is reduced to a bare column name.
//
// DML path (no statement-level SELECT): `INSERT INTO tbl (c1, c2, ...)`
// yields the parenthesized identifiers. UPDATE assignment targets are
// not enumerated, a known incompleteness. No match yields an empty set.
func columnRefs(toks []token.Token) map[string]struct{} {
	cols := make(map[string]struct{})

	_, start := cteDefs(toks)
	toks = toks[start:]

	if span, ok := projectionSpan(toks); ok {
		if len(span) == 1 && span[0].Type == token.STAR {
			cols["*"] = struct{}{}
			return cols
		}
		for _, item := range splitTopLevel(span) {
			if name, ok := itemColumn(item); ok {
				cols[name] = struct{}{}
			}
		}
		return cols
	}

	insertColumns(toks, cols)
	return cols
}

// projectionSpan returns the tokens strictly between the first depth-0
// SELECT and the first following FROM at the same depth. The second
// return is false when the statement has no depth-0 SELECT.
func projectionSpan(toks []token.Token) ([]token.Token, bool) {
	depth := 0
	sel := -1
	for i, t := range toks {
		switch t.Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			if depth > 0 {
				depth--
			}
		case token.SELECT:
			if depth == 0 {
				sel = i
			}
		}
		if sel >= 0 {
			break
		}
	}
	if sel < 0 {
		return nil, false
	}

	depth = 0
	for i := sel + 1; i < len(toks); i++ {
		switch toks[i].Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			if depth > 0 {
				depth--
			}
		case token.FROM:
			if depth == 0 {
				return toks[sel+1 : i], true
			}
		}
	}
	return toks[sel+1:], true
}

// splitTopLevel splits a token span on depth-0 commas.
func splitTopLevel(span []token.Token) [][]token.Token {
	var items [][]token.Token
	depth := 0
	start := 0
	for i, t := range span {
		switch t.Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			if depth > 0 {
				depth--
			}
		case token.COMMA:
			if depth == 0 {
				items = append(items, span[start:i])
				start = i + 1
			}
		}
	}
	items = append(items, span[start:])
	return items
}

// itemColumn reduces a single projection item to a bare column name.
// Any `AS alias` suffix is discarded first; the remaining expression is
// best-effort reduced to its trailing identifier with qualifiers
// dropped, so `t1.col1` gives col1 and `a + b` gives b. Identifiers at
// depth 0 win over nested ones. Items with no identifier at all
// (literals, bare `*`) yield nothing.
func itemColumn(item []token.Token) (string, bool) {
	depth := 0
	for i, t := range item {
		if t.Type == token.LPAREN {
			depth++
		} else if t.Type == token.RPAREN && depth > 0 {
			depth--
		} else if t.Type == token.AS && depth == 0 {
			item = item[:i]
			break
		}
	}

	var lastTop, lastAny string
	depth = 0
	for _, t := range item {
		switch t.Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			if depth > 0 {
				depth--
			}
		case token.IDENT:
			lastAny = t.Literal
			if depth == 0 {
				lastTop = t.Literal
			}
		}
	}

	if lastTop != "" {
		return lastTop, true
	}
	if lastAny != "" {
		return lastAny, true
	}
	return "", false
}

// insertColumns handles the DML path: for the first INTO clause whose
// table name is immediately followed by a parenthesized list, each
// comma-separated item's leading identifier is added to cols. A list
// introduced by VALUES or elsewhere does not qualify.
func insertColumns(toks []token.Token, cols map[string]struct{}) {
	for i := 0; i < len(toks); i++ {
		if toks[i].Type != token.INTO {
			continue
		}
		name, j := readQualifiedName(toks, i+1)
		if name == "" {
			continue
		}
		if j >= len(toks) || toks[j].Type != token.LPAREN {
			continue
		}
		end := skipBalanced(toks, j)
		inner := toks[j+1 : end]
		if end > j+1 && toks[end-1].Type == token.RPAREN {
			inner = toks[j+1 : end-1]
		}
		for _, item := range splitTopLevel(inner) {
			for _, t := range item {
				if t.Type == token.IDENT {
					cols[t.Literal] = struct{}{}
					break
				}
			}
		}
		return
	}
}
