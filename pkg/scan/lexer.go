// Package scan provides comment normalization and a small hand-rolled
// lexer for best-effort SQL scanning. It tokenizes just enough of the
// language for clause recognition: identifiers, literals, punctuation,
// and keywords. Anything it does not understand becomes an OP token, so
// scanning never fails.
package scan

import (
	"github.com/leapstack-labs/sqlrefs/pkg/token"
)

// Lexer tokenizes SQL input.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Tokenize runs a Lexer over input and returns every token up to EOF.
// The EOF token itself is not included.
func Tokenize(input string) []token.Token {
	l := NewLexer(input)
	var toks []token.Token
	for {
		tok := l.Next()
		if tok.Type == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// Next returns the next token.
func (l *Lexer) Next() token.Token {
	l.skipWhitespaceAndComments()

	pos := l.pos

	var tok token.Token
	tok.Pos = pos

	switch l.ch {
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
		return tok
	case '*':
		tok = token.Token{Type: token.STAR, Literal: "*", Pos: pos}
	case '.':
		tok = token.Token{Type: token.DOT, Literal: ".", Pos: pos}
	case ',':
		tok = token.Token{Type: token.COMMA, Literal: ",", Pos: pos}
	case '(':
		tok = token.Token{Type: token.LPAREN, Literal: "(", Pos: pos}
	case ')':
		tok = token.Token{Type: token.RPAREN, Literal: ")", Pos: pos}
	case '\'':
		tok.Type = token.STRING
		tok.Literal = l.readString()
		return tok
	case '"':
		// Quoted identifier (ANSI style)
		tok.Type = token.IDENT
		tok.Literal = l.readQuoted('"')
		return tok
	case '`':
		// Quoted identifier (MySQL style)
		tok.Type = token.IDENT
		tok.Literal = l.readQuoted('`')
		return tok
	default:
		switch {
		case isLetter(l.ch) || l.ch == '_':
			tok.Literal = l.readIdentifier()
			tok.Type = token.LookupIdent(tok.Literal)
			return tok
		case isDigit(l.ch):
			tok.Type = token.NUMBER
			tok.Literal = l.readNumber()
			return tok
		default:
			tok = token.Token{Type: token.OP, Literal: string(l.ch), Pos: pos}
		}
	}

	l.readChar()
	return tok
}

// skipWhitespaceAndComments advances past whitespace, line comments, and
// block comments. Input is usually pre-normalized, but the lexer stays
// safe on raw text too.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '-' && l.peekChar() == '-':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			l.readChar() // consume /
			l.readChar() // consume *
			for l.ch != 0 {
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar()
					l.readChar()
					break
				}
				l.readChar()
			}
		default:
			return
		}
	}
}

// readIdentifier reads an unquoted identifier or keyword.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || l.ch == '$' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads a numeric literal, tolerating exponents and dots.
func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) || l.ch == '.' || l.ch == 'e' || l.ch == 'E' {
		if (l.ch == 'e' || l.ch == 'E') && (l.peekChar() == '+' || l.peekChar() == '-') {
			l.readChar()
		}
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readString reads a single-quoted string literal, honoring '' escapes.
// The returned literal excludes the surrounding quotes. An unterminated
// literal reads to end of input.
func (l *Lexer) readString() string {
	l.readChar() // consume opening quote
	start := l.pos
	for l.ch != 0 {
		if l.ch == '\'' {
			if l.peekChar() == '\'' {
				l.readChar()
				l.readChar()
				continue
			}
			break
		}
		l.readChar()
	}
	s := l.input[start:l.pos]
	if l.ch == '\'' {
		l.readChar() // consume closing quote
	}
	return s
}

// readQuoted reads a delimiter-quoted identifier, excluding the quotes.
func (l *Lexer) readQuoted(quote byte) string {
	l.readChar() // consume opening quote
	start := l.pos
	for l.ch != 0 && l.ch != quote {
		l.readChar()
	}
	s := l.input[start:l.pos]
	if l.ch == quote {
		l.readChar() // consume closing quote
	}
	return s
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
