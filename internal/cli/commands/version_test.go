package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3")
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "sqlrefs v1.2.3")
	assert.Contains(t, out.String(), "Lexical SQL reference extractor")
}
