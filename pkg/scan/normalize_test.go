package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain statement unchanged",
			input: "SELECT id FROM users",
			want:  "SELECT id FROM users",
		},
		{
			name:  "whitespace runs collapse",
			input: "SELECT   id\t\tFROM\n\n  users",
			want:  "SELECT id FROM users",
		},
		{
			name:  "leading and trailing whitespace trimmed",
			input: "  SELECT 1  \n",
			want:  "SELECT 1",
		},
		{
			name:  "line comment removed through end of line",
			input: "SELECT id -- the id\nFROM users",
			want:  "SELECT id FROM users",
		},
		{
			name:  "line comment at end of input",
			input: "SELECT id FROM users -- done",
			want:  "SELECT id FROM users",
		},
		{
			name:  "block comment removed",
			input: "SELECT /* projection */ id FROM users",
			want:  "SELECT id FROM users",
		},
		{
			name:  "multiline block comment removed",
			input: "SELECT id\n/* spans\nlines */\nFROM users",
			want:  "SELECT id FROM users",
		},
		{
			name:  "shortest block match leaves trailing sql intact",
			input: "SELECT /* a */ id /* b */ FROM users",
			want:  "SELECT id FROM users",
		},
		{
			name:  "unterminated block comment removes to end",
			input: "SELECT id FROM users /* oops",
			want:  "SELECT id FROM users",
		},
		{
			name:  "comment markers inside string literal survive",
			input: "SELECT '--not a comment' FROM t",
			want:  "SELECT '--not a comment' FROM t",
		},
		{
			name:  "whitespace inside string literal survives",
			input: "SELECT 'a  b' FROM t",
			want:  "SELECT 'a  b' FROM t",
		},
		{
			name:  "escaped quote inside string literal",
			input: "SELECT 'it''s -- fine' FROM t",
			want:  "SELECT 'it''s -- fine' FROM t",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only comments",
			input: "-- nothing here\n/* at all */",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Contract(t *testing.T) {
	inputs := []string{
		"SELECT a, -- x\n b /* y */ FROM t",
		"/* unterminated",
		"--",
		"a\t\tb\nc",
	}

	for _, in := range inputs {
		got := Normalize(in)
		assert.NotContains(t, got, "--", "input %q", in)
		assert.NotContains(t, got, "/*", "input %q", in)
		assert.NotContains(t, got, "  ", "input %q", in)
		assert.Equal(t, strings.TrimSpace(got), got, "input %q", in)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	in := "SELECT a, -- c\n b /* d */ FROM   t"
	once := Normalize(in)
	assert.Equal(t, once, Normalize(once))
}
