package extract

import "github.com/leapstack-labs/sqlrefs/pkg/token"

// tableRefs scans for clauses introduced by FROM, JOIN, INTO, or UPDATE
// and accumulates the bare table names they reference. INSERT INTO is
// covered by INTO; the INSERT keyword itself introduces nothing.
//
// Clause keywords are recognized at any parenthesis depth, so derived
// table subqueries contribute their tables too. The one exception is a
// leading WITH clause: its definition bodies are opaque and skipped.
func tableRefs(toks []token.Token) map[string]struct{} {
	refs := make(map[string]struct{})

	_, start := cteDefs(toks)
	for i := start; i < len(toks); i++ {
		switch toks[i].Type {
		case token.FROM, token.JOIN, token.INTO, token.UPDATE:
			i = readTableClause(toks, i+1, refs) - 1
		}
	}

	return refs
}

// readTableClause consumes a comma-separated list of table clauses of
// the form `[schema.]name [[AS] alias]` starting at i, adding each bare
// name to refs. It returns the index of the first token past the list.
//
// The clause grammar is tolerant: a qualified name with no alias, an
// aliased name with or without AS, and multiple comma-separated names
// (implicit joins) are all accepted. A token that cannot start a name,
// such as the opening paren of a subquery, ends the clause immediately.
func readTableClause(toks []token.Token, i int, refs map[string]struct{}) int {
	for {
		name, j := readQualifiedName(toks, i)
		if name == "" {
			return i
		}
		refs[name] = struct{}{}
		i = j

		// Optional alias. A keyword after the name belongs to the next
		// clause (WHERE, SET, ON, ...) and never reads as an alias.
		if i < len(toks) && toks[i].Type == token.AS {
			i++
			if i < len(toks) && toks[i].Type == token.IDENT {
				i++
			}
		} else if i < len(toks) && toks[i].Type == token.IDENT {
			i++
		}

		if i < len(toks) && toks[i].Type == token.COMMA {
			i++
			continue
		}
		return i
	}
}
