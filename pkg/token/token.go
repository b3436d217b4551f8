// Package token defines the lexical token types for best-effort SQL scanning.
//
// The token set is intentionally small: the scanner only needs to tell
// identifiers, literals, punctuation, and the clause keywords apart. Any
// byte the scanner does not recognize becomes an OP token rather than an
// error, keeping the whole pipeline total over arbitrary input.
package token

import "strings"

// Type represents the type of a lexical token.
type Type int

const (
	// Special tokens
	EOF Type = iota

	// Literals
	IDENT  // identifier, possibly quoted
	NUMBER // 123, 45.67, 1e10
	STRING // 'hello'

	// Punctuation
	STAR   // *
	DOT    // .
	COMMA  // ,
	LPAREN // (
	RPAREN // )
	OP     // any other operator or stray byte

	// Keywords (alphabetical)
	ALL
	AND
	AS
	ASC
	BETWEEN
	BY
	CASE
	CROSS
	DELETE
	DESC
	DISTINCT
	ELSE
	END
	EXCEPT
	EXISTS
	FROM
	FULL
	GROUP
	HAVING
	IN
	INNER
	INSERT
	INTERSECT
	INTO
	IS
	JOIN
	LEFT
	LIKE
	LIMIT
	NATURAL
	NOT
	NULL
	OFFSET
	ON
	OR
	ORDER
	OUTER
	RECURSIVE
	RETURNING
	RIGHT
	SELECT
	SET
	THEN
	UNION
	UPDATE
	USING
	VALUES
	WHEN
	WHERE
	WITH
)

var tokenNames = map[Type]string{
	EOF:    "EOF",
	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",
	STAR:   "STAR",
	DOT:    "DOT",
	COMMA:  "COMMA",
	LPAREN: "LPAREN",
	RPAREN: "RPAREN",
	OP:     "OP",
}

var keywords = map[string]Type{
	"all":       ALL,
	"and":       AND,
	"as":        AS,
	"asc":       ASC,
	"between":   BETWEEN,
	"by":        BY,
	"case":      CASE,
	"cross":     CROSS,
	"delete":    DELETE,
	"desc":      DESC,
	"distinct":  DISTINCT,
	"else":      ELSE,
	"end":       END,
	"except":    EXCEPT,
	"exists":    EXISTS,
	"from":      FROM,
	"full":      FULL,
	"group":     GROUP,
	"having":    HAVING,
	"in":        IN,
	"inner":     INNER,
	"insert":    INSERT,
	"intersect": INTERSECT,
	"into":      INTO,
	"is":        IS,
	"join":      JOIN,
	"left":      LEFT,
	"like":      LIKE,
	"limit":     LIMIT,
	"natural":   NATURAL,
	"not":       NOT,
	"null":      NULL,
	"offset":    OFFSET,
	"on":        ON,
	"or":        OR,
	"order":     ORDER,
	"outer":     OUTER,
	"recursive": RECURSIVE,
	"returning": RETURNING,
	"right":     RIGHT,
	"select":    SELECT,
	"set":       SET,
	"then":      THEN,
	"union":     UNION,
	"update":    UPDATE,
	"using":     USING,
	"values":    VALUES,
	"when":      WHEN,
	"where":     WHERE,
	"with":      WITH,
}

// String returns a human-readable representation of the token type.
func (t Type) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	for name, kw := range keywords {
		if kw == t {
			return strings.ToUpper(name)
		}
	}
	return "UNKNOWN"
}

// IsKeyword reports whether t is a SQL keyword token.
func (t Type) IsKeyword() bool {
	return t >= ALL
}

// LookupIdent returns the keyword type for ident, or IDENT if the word
// is not a recognized keyword. Matching is case-insensitive.
func LookupIdent(ident string) Type {
	if t, ok := keywords[strings.ToLower(ident)]; ok {
		return t
	}
	return IDENT
}

// Token is a single lexical token with its literal text and byte offset.
type Token struct {
	Type    Type
	Literal string
	Pos     int // byte offset in the scanned input
}
